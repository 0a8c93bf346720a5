package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	length int
	node   *Raw
	ok     bool
}

func (c fakeCache) Lookup(offset int, kind Kind) (int, *Raw, bool) {
	return c.length, c.node, c.ok
}

// TestScenario_S5_IncrementalReuse realizes §8 scenario S5: a tree
// creator seeded with a cache returns the previously built node unchanged
// on a hit, with its node_id preserved, and retains its arena as a child.
func TestScenario_S5_IncrementalReuse(t *testing.T) {
	priorArena := NewArena()
	root := NewLayout(priorArena, "SourceFile", nil, 0)

	creator := NewTreeCreator(NewArena(), fakeCache{length: root.TextLength(), node: root, ok: true})

	length, node, ok := creator.LookupNode(0, "SourceFile")
	require.True(t, ok)
	require.Same(t, root, node)
	require.Equal(t, root.TextLength(), length)
	require.Equal(t, root.ID(), node.ID())
	require.True(t, creator.(*treeCreator).arena.HasChildArena(priorArena))
}

func TestTreeCreator_LookupMiss(t *testing.T) {
	creator := NewTreeCreator(NewArena(), fakeCache{ok: false})
	_, node, ok := creator.LookupNode(0, "SourceFile")
	require.False(t, ok)
	require.Nil(t, node)
}

func TestTreeCreator_NilCache(t *testing.T) {
	creator := NewTreeCreator(NewArena(), nil)
	_, _, ok := creator.LookupNode(0, "SourceFile")
	require.False(t, ok)
}

func TestTreeCreator_RecordToken(t *testing.T) {
	creator := NewTreeCreator(NewArena(), nil)
	tok := creator.RecordToken("Ident", nil, []byte("x"), nil)
	require.Equal(t, "x", string(tok.Text()))

	missing := creator.RecordMissingToken("Semicolon")
	require.True(t, missing.IsMissing())

	layout := creator.RecordRawSyntax("List", []*Raw{tok, missing})
	require.Len(t, layout.Children(), 2)

	require.Same(t, layout, creator.RealizeSyntaxRoot(layout))
}
