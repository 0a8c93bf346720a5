// Package syntax implements the raw syntax core: an immutable,
// arena-allocated tree of token and layout nodes with incremental reuse
// across edits.
//
// # Arena discipline
//
// A [Raw] node never owns memory directly; its text and trivia slices and
// its child pointers live in an [Arena] (or in another arena retained as a
// child arena of its own). Nodes are constructed once, by [NewToken] or
// [NewLayout] and friends, and are never mutated afterwards — transforms
// such as [Raw.WithLeadingTrivia] always return a new node.
//
// # Node identity
//
// Every node carries a [NodeID], assigned from a single process-wide
// counter (or adopted from a caller-supplied id, advancing the counter
// past it) so that incremental reparses can preserve identity for reused
// subtrees — see [Cache] and [TreeCreator.LookupNode].
package syntax
