package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newContextOwner() *Task {
	return NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
}

func TestContext_OrdinaryVariantAccessorsPanic(t *testing.T) {
	owner := newContextOwner()
	c := NewContext(owner, nil, nil, nil)
	require.Equal(t, ContextOrdinary, c.Flags().Kind())
	require.Panics(t, func() { c.YieldToParent() })
	require.Panics(t, func() { c.ResultSlot() })
	require.Panics(t, func() { c.ErrorSlot() })
	require.Panics(t, func() { c.Closure() })
}

func TestContext_YieldingVariant(t *testing.T) {
	owner := newContextOwner()
	exec := &syncExecutor{}
	c := NewYieldingContext(owner, nil, nil, nil, exec, exec)
	require.Equal(t, ContextYielding, c.Flags().Kind())

	resume, executor := c.YieldToParent()
	require.Nil(t, resume)
	require.Same(t, exec, executor)

	require.Panics(t, func() { c.ResultSlot() })
}

func TestContext_FutureVariant(t *testing.T) {
	owner := newContextOwner()
	var result any
	var errSlot error
	c := NewFutureContext(owner, nil, nil, nil, &result, &errSlot)
	require.Equal(t, ContextFuture, c.Flags().Kind())
	require.Same(t, &result, c.ResultSlot())
	require.Same(t, &errSlot, c.ErrorSlot())
	require.Panics(t, func() { c.Closure() })
}

func TestContext_FutureClosureVariant(t *testing.T) {
	owner := newContextOwner()
	var result any
	var errSlot error
	closure := func() {}
	c := NewFutureClosureContext(owner, nil, nil, nil, &result, &errSlot, closure)
	require.Equal(t, ContextFutureClosure, c.Flags().Kind())
	require.Same(t, &result, c.ResultSlot())
	require.NotNil(t, c.Closure())
}

// TestContext_AllocationComesFromOwnerPool realizes §4.6 ("Context
// allocation is typically from the task allocator"): releasing a Context
// back to its owner and allocating a new one reuses the same backing
// object, the pooling behaviour NewContext is grounded on.
func TestContext_AllocationComesFromOwnerPool(t *testing.T) {
	owner := newContextOwner()
	c1 := NewContext(owner, nil, nil, nil)
	owner.ReleaseContext(c1)
	c2 := NewContext(owner, nil, nil, nil)
	require.Same(t, c1, c2, "a released Context is reused by the next allocation from the same owner")
}

// TestContext_Return realizes the core's resolution of the spec's
// "same executor" Open Question: Return always tail-calls through
// resumeParentExecutor.Enqueue, never inline, regardless of which
// executor the caller passes as currentExecutor.
func TestContext_Return(t *testing.T) {
	owner := newContextOwner()
	resumeExec := &recordingExecutor{}
	var resumedWith *Context
	resume := func(_ *Task, _ ExecutorRef, parent *Context) { resumedWith = parent }

	grandparent := NewContext(owner, nil, nil, nil)
	c := NewContext(owner, grandparent, resume, resumeExec)

	currentExec := &syncExecutor{}
	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	c.Return(tk, currentExec)

	require.Empty(t, currentExec.ran, "Return must not run inline on currentExecutor")
	require.Len(t, resumeExec.queue, 1)
	resumeExec.drain()
	require.Same(t, grandparent, resumedWith)
}

func TestContext_Return_PassesRealTask(t *testing.T) {
	owner := newContextOwner()
	resumeExec := &recordingExecutor{}
	var resumedTask *Task
	resume := func(tk *Task, _ ExecutorRef, _ *Context) { resumedTask = tk }

	c := NewContext(owner, nil, resume, resumeExec)
	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	c.Return(tk, &syncExecutor{})

	resumeExec.drain()
	require.Same(t, tk, resumedTask, "resume must observe the real task, not a garbage pointer recovered from a standalone Job")
}

func TestContext_Return_NilResumeIsNoop(t *testing.T) {
	owner := newContextOwner()
	c := NewContext(owner, nil, nil, nil)
	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	require.NotPanics(t, func() { c.Return(tk, &syncExecutor{}) })
}

func TestContext_Yield(t *testing.T) {
	owner := newContextOwner()
	yieldExec := &recordingExecutor{}
	var resumedWith *Context
	yieldTo := func(_ *Task, _ ExecutorRef, parent *Context) { resumedWith = parent }

	grandparent := NewContext(owner, nil, nil, nil)
	c := NewYieldingContext(owner, grandparent, nil, yieldTo, nil, yieldExec)

	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	c.Yield(tk, &syncExecutor{})

	require.Len(t, yieldExec.queue, 1)
	yieldExec.drain()
	require.Same(t, grandparent, resumedWith)
}

func TestContext_Yield_PassesRealTask(t *testing.T) {
	owner := newContextOwner()
	yieldExec := &recordingExecutor{}
	var resumedTask *Task
	yieldTo := func(tk *Task, _ ExecutorRef, _ *Context) { resumedTask = tk }

	c := NewYieldingContext(owner, nil, nil, yieldTo, nil, yieldExec)
	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	c.Yield(tk, &syncExecutor{})

	yieldExec.drain()
	require.Same(t, tk, resumedTask, "yield must observe the real task, not a garbage pointer recovered from a standalone Job")
}

func TestContext_Yield_NilContinuationIsNoop(t *testing.T) {
	owner := newContextOwner()
	c := NewYieldingContext(owner, nil, nil, nil, nil, nil)
	tk := NewTask(NewJobFlags(true, false, false, false, PriorityDefault), func(*Task, ExecutorRef, *Context) {})
	require.NotPanics(t, func() { c.Yield(tk, &syncExecutor{}) })
}
