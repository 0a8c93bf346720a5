package task

// ResumeFunc is a continuation invoked in a parent frame, as a tail call.
type ResumeFunc func(t *Task, executor ExecutorRef, parent *Context)

// Context is one activation record in a singly linked chain representing
// a task's call stack across suspensions. It is non-copyable by
// convention: always construct and pass around a *Context, never a
// Context value, since the chain's identity is pointer identity (the
// spec's "Non-copyable" invariant has no Go-enforceable analogue absent
// an embedded sync primitive, so it's carried as a documented convention
// the way the teacher marks conceptually non-copyable structs).
type Context struct {
	// parent is owned by this chain link (not by reference count): once a
	// Context is dropped, its parent link is dropped too.
	parent *Context

	resumeParent         ResumeFunc
	resumeParentExecutor ExecutorRef

	flags ContextFlags

	yielding *yieldingExtra
	future   *futureExtra
}

// yieldingExtra holds the fields added by the Yielding context variant.
type yieldingExtra struct {
	yieldToParent         ResumeFunc
	yieldToParentExecutor ExecutorRef
}

// futureExtra holds the fields added by the Future/FutureClosure context
// variants: an indirect result slot, an optional error slot, and (for
// FutureClosure) a captured closure reference.
type futureExtra struct {
	resultSlot *any
	errorSlot  *error
	closure    any
}

// NewContext constructs an Ordinary Context, allocated from owner's own
// scratch allocator per §4.6 ("Context allocation is typically from the
// task allocator"). Release it back to the pool with owner.ReleaseContext
// once it's no longer reachable from any live resume chain.
func NewContext(owner *Task, parent *Context, resumeParent ResumeFunc, resumeParentExecutor ExecutorRef) *Context {
	c := owner.alloc.allocContext()
	c.parent = parent
	c.resumeParent = resumeParent
	c.resumeParentExecutor = resumeParentExecutor
	c.flags = NewContextFlags(ContextOrdinary)
	return c
}

// NewYieldingContext constructs a Yielding Context, which additionally
// carries a yield_to_parent continuation used when the child wants to
// suspend-and-resume without returning.
func NewYieldingContext(owner *Task, parent *Context, resumeParent, yieldToParent ResumeFunc, resumeExecutor, yieldExecutor ExecutorRef) *Context {
	c := NewContext(owner, parent, resumeParent, resumeExecutor)
	c.flags = NewContextFlags(ContextYielding)
	c.yielding = &yieldingExtra{yieldToParent: yieldToParent, yieldToParentExecutor: yieldExecutor}
	return c
}

// NewFutureContext constructs a Future Context carrying an indirect
// result slot and optional error slot.
func NewFutureContext(owner *Task, parent *Context, resumeParent ResumeFunc, resumeExecutor ExecutorRef, resultSlot *any, errorSlot *error) *Context {
	c := NewContext(owner, parent, resumeParent, resumeExecutor)
	c.flags = NewContextFlags(ContextFuture)
	c.future = &futureExtra{resultSlot: resultSlot, errorSlot: errorSlot}
	return c
}

// NewFutureClosureContext constructs a FutureClosure Context, further
// capturing a closure object reference.
func NewFutureClosureContext(owner *Task, parent *Context, resumeParent ResumeFunc, resumeExecutor ExecutorRef, resultSlot *any, errorSlot *error, closure any) *Context {
	c := NewFutureContext(owner, parent, resumeParent, resumeExecutor, resultSlot, errorSlot)
	c.flags = NewContextFlags(ContextFutureClosure)
	c.future.closure = closure
	return c
}

// Parent returns the next-older activation record, or nil at the root.
func (c *Context) Parent() *Context { return c.parent }

// Flags returns the context's packed flags word.
func (c *Context) Flags() ContextFlags { return c.flags }

// YieldToParent returns the Yielding variant's continuation. Panics with
// ErrFragmentNotPresent if this isn't a Yielding context.
func (c *Context) YieldToParent() (ResumeFunc, ExecutorRef) {
	if c.yielding == nil {
		panic(WrapError("YieldToParent", ErrFragmentNotPresent))
	}
	return c.yielding.yieldToParent, c.yielding.yieldToParentExecutor
}

// ResultSlot returns the Future/FutureClosure variant's indirect result
// slot. Panics with ErrFragmentNotPresent otherwise.
func (c *Context) ResultSlot() *any {
	if c.future == nil {
		panic(WrapError("ResultSlot", ErrFragmentNotPresent))
	}
	return c.future.resultSlot
}

// ErrorSlot returns the Future/FutureClosure variant's optional error
// slot. Panics with ErrFragmentNotPresent otherwise.
func (c *Context) ErrorSlot() *error {
	if c.future == nil {
		panic(WrapError("ErrorSlot", ErrFragmentNotPresent))
	}
	return c.future.errorSlot
}

// Closure returns the FutureClosure variant's captured closure reference.
// Panics with ErrFragmentNotPresent if this isn't a FutureClosure context.
func (c *Context) Closure() any {
	if c.future == nil || c.flags.Kind() != ContextFutureClosure {
		panic(WrapError("Closure", ErrFragmentNotPresent))
	}
	return c.future.closure
}

// Return performs a return by tail-calling resume_parent. Per this core's
// resolution of the spec's second Open Question (§9), the hop is always
// explicit: Return always enqueues onto resumeParentExecutor rather than
// special-casing "same executor as currentExecutor, call directly",
// matching the teacher's never-short-circuit Submit convention.
func (c *Context) Return(t *Task, currentExecutor ExecutorRef) {
	parent := c.parent
	resume := c.resumeParent
	executor := c.resumeParentExecutor
	if resume == nil {
		return
	}
	// Enqueued as a plain Job, not a Job constructed via NewTaskJob: t's
	// own &t.Job is the only Job that taskFromJob can recover a *Task
	// from (it relies on Job being Task's first field), and t is already
	// captured directly in the closure, so there is no need to dispatch
	// back through that mechanism at all.
	executor.Enqueue(NewSimpleJob(NewJobFlags(false, false, false, false, t.Flags().Priority()), func(_ *Job, executor ExecutorRef) {
		resume(t, executor, parent)
	}))
}

// Yield performs a yield-to-parent by invoking the Yielding variant's
// continuation, without returning. After the parent resumes via
// yield_to_parent, control may later re-enter the child via whatever
// resume function the child last installed as its task's resume context.
func (c *Context) Yield(t *Task, currentExecutor ExecutorRef) {
	resume, executor := c.YieldToParent()
	if resume == nil {
		return
	}
	parent := c.parent
	// See the comment in Return: this must stay a plain Job capturing t
	// directly, not one built via NewTaskJob, or taskFromJob would recover
	// a bogus *Task from a standalone Job's address.
	executor.Enqueue(NewSimpleJob(NewJobFlags(false, false, false, false, t.Flags().Priority()), func(_ *Job, executor ExecutorRef) {
		resume(t, executor, parent)
	}))
}
