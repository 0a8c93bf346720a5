package syntax

// Cache is the externally supplied incremental-reuse cache consulted by
// TreeCreator.LookupNode, keyed on (lexer offset, kind) per §4.8. The
// parser front-end owns the concrete implementation (typically seeded
// from a prior parse's tree); this package only consumes it at the
// boundary, matching the teacher's "small interface, caller supplies the
// implementation" style (closest stylistic precedent: its own Logger
// interface in eventloop/logging.go).
type Cache interface {
	// Lookup returns a previously parsed subtree reusable at offset for
	// kind, and the number of source bytes it consumes. ok is false on a
	// cache miss.
	Lookup(offset int, kind Kind) (length int, node *Raw, ok bool)
}

// TreeCreator bundles the syntax-construction boundary a parser
// front-end drives against, per §6's "Syntax boundary" surface.
type TreeCreator interface {
	// RecordToken constructs and returns a present token.
	RecordToken(kind Kind, leadingTrivia, text, trailingTrivia []byte) *Raw

	// RecordMissingToken constructs and returns a missing token.
	RecordMissingToken(kind Kind) *Raw

	// RecordRawSyntax constructs and returns a present layout over
	// children.
	RecordRawSyntax(kind Kind, children []*Raw) *Raw

	// LookupNode consults the creator's cache for a node reusable at
	// offset for kind; on a hit, the reused node's arena is retained as a
	// child arena of the creator's own, per §4.8 "the reused node is
	// guaranteed to be in a compatible arena... added as a child arena of
	// the current arena by the caller that records it."
	LookupNode(offset int, kind Kind) (length int, node *Raw, ok bool)

	// RealizeSyntaxRoot finalizes root as the tree's published root node.
	RealizeSyntaxRoot(root *Raw) *Raw
}

// treeCreator is the default TreeCreator: one arena, one optional Cache.
type treeCreator struct {
	arena *Arena
	cache Cache
}

// NewTreeCreator constructs a TreeCreator that allocates into arena and,
// if cache is non-nil, consults it from LookupNode.
func NewTreeCreator(arena *Arena, cache Cache) TreeCreator {
	return &treeCreator{arena: arena, cache: cache}
}

func (t *treeCreator) RecordToken(kind Kind, leadingTrivia, text, trailingTrivia []byte) *Raw {
	return NewToken(t.arena, kind, leadingTrivia, text, trailingTrivia, 0)
}

func (t *treeCreator) RecordMissingToken(kind Kind) *Raw {
	return NewMissingToken(t.arena, kind, 0)
}

func (t *treeCreator) RecordRawSyntax(kind Kind, children []*Raw) *Raw {
	return NewLayout(t.arena, kind, children, 0)
}

func (t *treeCreator) LookupNode(offset int, kind Kind) (int, *Raw, bool) {
	if t.cache == nil {
		return 0, nil, false
	}
	length, node, ok := t.cache.Lookup(offset, kind)
	if ok && node != nil && node.arena != t.arena {
		t.arena.addChild(node.arena)
	}
	return length, node, ok
}

func (t *treeCreator) RealizeSyntaxRoot(root *Raw) *Raw {
	return root
}
