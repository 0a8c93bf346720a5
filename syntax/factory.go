package syntax

// NewToken constructs a present token node: kind, text, and its
// surrounding trivia, realizing §4.7's token-construction contract. text,
// leadingTrivia, and trailingTrivia are copied into arena unless they
// already point into it. If nodeID is non-zero it is adopted as this
// node's identity (advancing the process-wide counter past it); otherwise
// a fresh id is assigned.
func NewToken(arena *Arena, kind Kind, leadingTrivia, text, trailingTrivia []byte, nodeID NodeID) *Raw {
	r := &Raw{
		id:         assignNodeID(nodeID),
		arena:      arena,
		kind:       kind,
		presence:   Present,
		isToken:    true,
		textLength: len(leadingTrivia) + len(text) + len(trailingTrivia),
		token: &tokenPayload{
			leadingTrivia:  arena.intern(leadingTrivia),
			text:           arena.intern(text),
			trailingTrivia: arena.intern(trailingTrivia),
		},
	}
	logNodeCreated(r)
	return r
}

// NewMissingToken constructs a missing token: presence=Missing,
// text_length=0, no trivia, per §4.7's missing-node factories.
func NewMissingToken(arena *Arena, kind Kind, nodeID NodeID) *Raw {
	r := &Raw{
		id:       assignNodeID(nodeID),
		arena:    arena,
		kind:     kind,
		presence: Missing,
		isToken:  true,
		token:    &tokenPayload{},
	}
	logNodeCreated(r)
	return r
}

// NewLayout constructs a present layout node from an ordered child slice,
// realizing §4.7's layout-construction contract: aggregate text_length
// and total_sub_node_count are computed from the children, and any child
// whose arena differs from arena is retained via Arena.addChild so its
// storage outlives references into it. A nil entry in children is
// permitted (an absent optional child slot) and contributes nothing to
// either aggregate.
func NewLayout(arena *Arena, kind Kind, children []*Raw, nodeID NodeID) *Raw {
	childCopy := make([]*Raw, len(children))
	copy(childCopy, children)

	length := 0
	subCount := 0
	for _, c := range childCopy {
		if c == nil {
			continue
		}
		if c.arena != arena {
			arena.addChild(c.arena)
		}
		length += c.TextLength()
		subCount += 1 + c.TotalSubNodeCount()
	}

	r := &Raw{
		id:         assignNodeID(nodeID),
		arena:      arena,
		kind:       kind,
		presence:   Present,
		isToken:    false,
		textLength: length,
		layout: &layoutPayload{
			children:          childCopy,
			totalSubNodeCount: subCount,
		},
	}
	logNodeCreated(r)
	return r
}

// NewMissingLayout constructs a missing layout: presence=Missing,
// text_length=0, no children, per §4.7's missing-node factories.
func NewMissingLayout(arena *Arena, kind Kind, nodeID NodeID) *Raw {
	r := &Raw{
		id:       assignNodeID(nodeID),
		arena:    arena,
		kind:     kind,
		presence: Missing,
		isToken:  false,
		layout:   &layoutPayload{},
	}
	logNodeCreated(r)
	return r
}

// WithLeadingTrivia returns a new token node, identical to r except with
// leadingTrivia replaced, per §4.7's transform contract ("produce a new
// node in the same arena; they never mutate in place"). Panics if r is
// not a token.
func (r *Raw) WithLeadingTrivia(leadingTrivia []byte) *Raw {
	tok := r.mustToken("WithLeadingTrivia")
	interned := r.arena.intern(leadingTrivia)
	newTok := &tokenPayload{leadingTrivia: interned, text: tok.text, trailingTrivia: tok.trailingTrivia}
	return &Raw{
		id:         nextNodeID(),
		arena:      r.arena,
		kind:       r.kind,
		presence:   r.presence,
		isToken:    true,
		textLength: len(newTok.leadingTrivia) + len(newTok.text) + len(newTok.trailingTrivia),
		token:      newTok,
	}
}

// WithTrailingTrivia returns a new token node with trailingTrivia
// replaced. Panics if r is not a token.
func (r *Raw) WithTrailingTrivia(trailingTrivia []byte) *Raw {
	tok := r.mustToken("WithTrailingTrivia")
	interned := r.arena.intern(trailingTrivia)
	newTok := &tokenPayload{leadingTrivia: tok.leadingTrivia, text: tok.text, trailingTrivia: interned}
	return &Raw{
		id:         nextNodeID(),
		arena:      r.arena,
		kind:       r.kind,
		presence:   r.presence,
		isToken:    true,
		textLength: len(newTok.leadingTrivia) + len(newTok.text) + len(newTok.trailingTrivia),
		token:      newTok,
	}
}

// AppendChild returns a new layout node with child appended to the
// existing children. Panics if r is not a layout.
func (r *Raw) AppendChild(child *Raw) *Raw {
	lay := r.mustLayout("AppendChild")
	children := make([]*Raw, len(lay.children)+1)
	copy(children, lay.children)
	children[len(lay.children)] = child
	return NewLayout(r.arena, r.kind, children, 0)
}

// ReplaceChildAt returns a new layout node with the child at cursor
// replaced by newChild. Panics if r is not a layout, or if cursor is out
// of range.
func (r *Raw) ReplaceChildAt(cursor int, newChild *Raw) *Raw {
	lay := r.mustLayout("ReplaceChildAt")
	if cursor < 0 || cursor >= len(lay.children) {
		panic(WrapError("ReplaceChildAt", ErrChildIndexOutOfRange))
	}
	children := make([]*Raw, len(lay.children))
	copy(children, lay.children)
	children[cursor] = newChild
	return NewLayout(r.arena, r.kind, children, 0)
}
