package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_InternCopiesForeignBytes(t *testing.T) {
	arena := NewArena()
	foreign := []byte("hello")
	interned := arena.intern(foreign)

	require.Equal(t, "hello", string(interned))
	require.True(t, arena.owns(interned))
	require.False(t, arena.owns(foreign), "the original foreign slice is not the arena's own storage")
}

func TestArena_InternHotSourceZeroCopy(t *testing.T) {
	arena := NewArena()
	source := []byte("package main\n")
	arena.UseHotSource(source)

	slice := source[0:7]
	interned := arena.intern(slice)

	require.Same(t, &source[0], &interned[0], "a slice already inside the hot region must not be copied")
}

func TestArena_InternLargerThanChunk(t *testing.T) {
	arena := NewArena()
	big := make([]byte, arenaChunkSize+10)
	for i := range big {
		big[i] = byte(i)
	}
	interned := arena.intern(big)
	require.Equal(t, big, interned)
}

// TestScenario_S6_CrossArenaReference realizes §8 scenario S6: arena A
// retains arena B via addChild, so a node built in A referencing a node
// from B stays valid conceptually even once nothing external still
// references B directly.
func TestScenario_S6_CrossArenaReference(t *testing.T) {
	arenaB := NewArena()
	nodeFromB := NewToken(arenaB, "Ident", nil, []byte("y"), nil, 0)

	arenaA := NewArena()
	layout := NewLayout(arenaA, "Wrapper", []*Raw{nodeFromB}, 0)

	require.True(t, arenaA.HasChildArena(arenaB))
	require.Same(t, arenaB, layout.Children()[0].Arena())
}
