package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNodeID_Uniqueness realizes §8 property 8: no two nodes created in
// the same process share a node_id unless the caller explicitly reuses
// one.
func TestNodeID_Uniqueness(t *testing.T) {
	arena := NewArena()
	a := NewToken(arena, "A", nil, []byte("a"), nil, 0)
	b := NewToken(arena, "B", nil, []byte("b"), nil, 0)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestNodeID_CallerSuppliedAdvancesCounter(t *testing.T) {
	arena := NewArena()
	far := NodeID(nodeIDCounter.Load() + 1000)
	explicit := NewToken(arena, "A", nil, []byte("a"), nil, far)
	require.Equal(t, far, explicit.ID())

	next := NewToken(arena, "B", nil, []byte("b"), nil, 0)
	require.Greater(t, next.ID(), far, "auto-assignment must never collide with an adopted caller id")
}
