package task

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStatusTask() *Task {
	return NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
}

// TestStatusRecord_PushPopLIFO realizes §8 property 5: status records
// nest in strict LIFO order.
func TestStatusRecord_PushPopLIFO(t *testing.T) {
	tk := newStatusTask()
	require.Nil(t, tk.InnermostStatusRecord())

	outer := &TaskStatusRecordNode{Kind: "outer"}
	inner := &TaskStatusRecordNode{Kind: "inner"}

	tk.PushStatusRecord(outer)
	require.Same(t, outer, tk.InnermostStatusRecord())

	tk.PushStatusRecord(inner)
	require.Same(t, inner, tk.InnermostStatusRecord())
	require.Same(t, outer, inner.Parent)

	tk.PopStatusRecord(inner)
	require.Same(t, outer, tk.InnermostStatusRecord())

	tk.PopStatusRecord(outer)
	require.Nil(t, tk.InnermostStatusRecord())
}

func TestStatusRecord_OutOfOrderPopPanics(t *testing.T) {
	tk := newStatusTask()
	outer := &TaskStatusRecordNode{Kind: "outer"}
	inner := &TaskStatusRecordNode{Kind: "inner"}
	tk.PushStatusRecord(outer)
	tk.PushStatusRecord(inner)

	require.PanicsWithValue(t, WrapError("PopStatusRecord", ErrOutOfOrderStatusPop), func() {
		tk.PopStatusRecord(outer)
	})

	// the chain is left untouched by the failed pop
	require.Same(t, inner, tk.InnermostStatusRecord())
}

func TestStatusRecord_CancellationSurvivesPushPop(t *testing.T) {
	tk := newStatusTask()
	tk.Cancel()

	rec := &TaskStatusRecordNode{Kind: "test"}
	tk.PushStatusRecord(rec)
	require.True(t, tk.IsCancelled())
	tk.PopStatusRecord(rec)
	require.True(t, tk.IsCancelled())
}

// TestStatusRecord_ConcurrentCancelDuringPushPop exercises the CAS-spin
// lock discipline under contention between the owning task's own
// push/pop sequence and an external goroutine calling Cancel, the one
// concurrent access pattern the design actually permits (§3.1: only the
// owning task mutates the record chain; any goroutine may cancel).
func TestStatusRecord_ConcurrentCancelDuringPushPop(t *testing.T) {
	tk := newStatusTask()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tk.Cancel()
	}()

	const n = 256
	for i := 0; i < n; i++ {
		rec := &TaskStatusRecordNode{Kind: "owner"}
		tk.PushStatusRecord(rec)
		tk.PopStatusRecord(rec)
	}
	wg.Wait()
	require.Nil(t, tk.InnermostStatusRecord())
}
