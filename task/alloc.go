package task

// Allocator is the contract a task-local scratch allocator must satisfy:
// alloc/dealloc with strict LIFO discipline, scoped to one task (§6
// "Task allocator contract").
type Allocator interface {
	Alloc() (ptr any)
	Dealloc(ptr any)
}

// allocator is the concrete per-task bump-style scratch allocator backing
// Task.PushLocal/PopLocal and Context allocation. It is grounded on the
// teacher's TaskArena (internal/alternatetwo/arena.go): a small pool of
// pre-allocated objects reused via LIFO release, adapted from a single
// shared process-wide arena to one scoped per task, since the spec
// requires "never hand out addresses outside the task's own allocation
// chain" — a guarantee that only holds if each task has its own pool.
type allocator struct {
	freeBindings []*localBinding
	freeContexts []*Context
}

func (a *allocator) allocLocalBinding() *localBinding {
	if n := len(a.freeBindings); n > 0 {
		b := a.freeBindings[n-1]
		a.freeBindings = a.freeBindings[:n-1]
		*b = localBinding{}
		return b
	}
	return &localBinding{}
}

func (a *allocator) freeLocalBinding(b *localBinding) {
	*b = localBinding{}
	a.freeBindings = append(a.freeBindings, b)
}

// allocContext returns a scratch *Context from the task's own pool, per
// §4.6 "Context allocation is typically from the task allocator". Callers
// that prefer caller-frame allocation may simply construct a *Context
// directly instead; the ABI does not distinguish.
func (a *allocator) allocContext() *Context {
	if n := len(a.freeContexts); n > 0 {
		c := a.freeContexts[n-1]
		a.freeContexts = a.freeContexts[:n-1]
		*c = Context{}
		return c
	}
	return &Context{}
}

// freeContext returns a *Context to the task's own pool. Callers must
// release contexts in LIFO order relative to allocContext, matching the
// allocator's overall discipline.
func (a *allocator) freeContext(c *Context) {
	*c = Context{}
	a.freeContexts = append(a.freeContexts, c)
}

// Alloc implements Allocator by handing out a pooled *Context, the one
// scratch object §4.6 actually calls out as coming from the task
// allocator.
func (a *allocator) Alloc() any { return a.allocContext() }

// Dealloc implements Allocator. ptr must be a *Context previously
// returned by Alloc.
func (a *allocator) Dealloc(ptr any) {
	a.freeContext(ptr.(*Context))
}

var _ Allocator = (*allocator)(nil)
