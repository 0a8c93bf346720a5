package task

// taskOptions holds configuration applied when constructing a Task,
// modelled directly on the teacher's loopOptions/LoopOption/
// resolveLoopOptions triple (functional options resolved once at
// construction time, not reconsulted afterwards).
type taskOptions struct {
	parent     *Task
	group      *Group
	resultType ResultType
}

// TaskOption configures a Task at construction time.
type TaskOption interface {
	applyTask(*taskOptions)
}

type taskOptionFunc func(*taskOptions)

func (f taskOptionFunc) applyTask(o *taskOptions) { f(o) }

// WithParent sets the owning parent for a child task (flags.IsChildTask()
// must also be set for this to take effect).
func WithParent(parent *Task) TaskOption {
	return taskOptionFunc(func(o *taskOptions) { o.parent = parent })
}

// WithGroupOption attaches a task to a TaskGroup (flags.IsGroupChild()
// must also be set for this to take effect).
func WithGroupOption(group *Group) TaskOption {
	return taskOptionFunc(func(o *taskOptions) { o.group = group })
}

// WithResultType sets the value-witness-bearing result type descriptor of
// a future task. The descriptor is stored on the FutureFragment for
// introspection only; results are held as `any` and are not sized by it.
func WithResultType(rt ResultType) TaskOption {
	return taskOptionFunc(func(o *taskOptions) { o.resultType = rt })
}

func resolveTaskOptions(opts []TaskOption) *taskOptions {
	cfg := &taskOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyTask(cfg)
	}
	return cfg
}
