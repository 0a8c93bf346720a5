package syntax

// Raw is an immutable raw-syntax node: either a token (kind + text +
// leading/trailing trivia) or a layout (kind + ordered children), carrying
// a cached aggregate text length and a stable node identity. Go has no
// tagged union, so the two payload variants are realized as mutually
// exclusive payload pointers — the same "optional pointer extension"
// technique task.Task uses for its own C-ABI-variant fragments.
//
// Raw is never mutated after construction; WithLeadingTrivia and friends
// always return a new node in the same arena.
type Raw struct {
	id       NodeID
	arena    *Arena
	kind     Kind
	presence Presence

	textLength int
	isToken    bool

	token  *tokenPayload
	layout *layoutPayload
}

// tokenPayload holds a token node's text and surrounding trivia, each a
// slice into the node's arena (or an arena it retains).
type tokenPayload struct {
	leadingTrivia  []byte
	text           []byte
	trailingTrivia []byte
}

// layoutPayload holds a layout node's ordered, non-owning child pointers
// and the cached aggregate sub-node count.
type layoutPayload struct {
	children          []*Raw
	totalSubNodeCount int
}

// ID returns the node's stable identity.
func (r *Raw) ID() NodeID { return r.id }

// Arena returns the arena this node's own storage was allocated from.
func (r *Raw) Arena() *Arena { return r.arena }

// Kind returns the node's grammar-level kind.
func (r *Raw) Kind() Kind { return r.kind }

// Presence reports whether this node stands in for a missing token or
// subtree.
func (r *Raw) Presence() Presence { return r.presence }

// IsMissing reports Presence() == Missing.
func (r *Raw) IsMissing() bool { return r.presence == Missing }

// TextLength returns the cached aggregate spelled byte length: 0 for a
// missing node, leading+text+trailing for a present token, and the sum of
// children's TextLength for a layout.
func (r *Raw) TextLength() int { return r.textLength }

// IsToken reports whether this node is a token (as opposed to a layout).
func (r *Raw) IsToken() bool { return r.isToken }

// TotalSubNodeCount returns the cached Σ(1 + child.TotalSubNodeCount())
// over this node's children; 0 for a token, which has none.
func (r *Raw) TotalSubNodeCount() int {
	if r.isToken {
		return 0
	}
	return r.layout.totalSubNodeCount
}

// mustToken panics with ErrWrongNodeVariant if this node isn't a token.
func (r *Raw) mustToken(op string) *tokenPayload {
	if !r.isToken || r.token == nil {
		panic(WrapError(op, ErrWrongNodeVariant))
	}
	return r.token
}

// mustLayout panics with ErrWrongNodeVariant if this node isn't a layout.
func (r *Raw) mustLayout(op string) *layoutPayload {
	if r.isToken || r.layout == nil {
		panic(WrapError(op, ErrWrongNodeVariant))
	}
	return r.layout
}

// Text returns a token's own spelled text, excluding trivia. Panics if
// this node is not a token.
func (r *Raw) Text() []byte { return r.mustToken("Text").text }

// LeadingTrivia returns a token's leading trivia. Panics if this node is
// not a token.
func (r *Raw) LeadingTrivia() []byte { return r.mustToken("LeadingTrivia").leadingTrivia }

// TrailingTrivia returns a token's trailing trivia. Panics if this node is
// not a token.
func (r *Raw) TrailingTrivia() []byte { return r.mustToken("TrailingTrivia").trailingTrivia }

// Children returns a layout's ordered children. Panics if this node is
// not a layout. The returned slice must not be mutated by the caller.
func (r *Raw) Children() []*Raw { return r.mustLayout("Children").children }
