package task

import (
	"sync/atomic"
	"unsafe"
)

// Task is a heap-allocated Job extended with a resume context, atomic
// status, a task-local value stack, a scratch allocator, and optional
// trailing fragments (child, group-child, future).
//
// Task embeds Job as its first field so that a *Job obtained from
// scheduling machinery can always be recovered back into its owning
// *Task via taskFromJob, mirroring the spec's "heap object embedding a
// Job" layout without requiring a flexible trailing array (Go has none);
// fragments are realized as optional pointers instead of an offset-computed
// trailing region.
type Task struct {
	Job

	// resumeContext is the task's current activation record.
	resumeContext *Context

	// status packs {innermost status record, cancelled, locked}; see status.go.
	status atomic.Uint64

	alloc allocator

	// local is the head of the task-local binding stack.
	local *localBinding

	// parent, set only when flags.IsChildTask(): the task that spawned
	// this one, used for InheritFromParent local-value lookups.
	parent *Task

	// firstChild is the head of this task's own children list — the
	// concrete realization of the abstract ChildTaskStatusRecord the spec
	// describes only as "a status record on the parent" (§3.1). It exists
	// regardless of this task's own flags: any task may spawn children.
	firstChild *Task

	child  *ChildFragment
	group  *GroupChildFragment
	future *FutureFragment
}

// taskFromJob recovers the owning *Task from a *Job that was obtained as
// part of that Task's embedded Job field. It is only valid to call this
// when job.Flags().IsAsyncTask() is true, i.e. the Job really is the head
// of a Task.
func taskFromJob(job *Job) *Task {
	return (*Task)(unsafe.Pointer(job))
}

// NewTask constructs a new AsyncTask around the given resume function.
// The flags' IsAsyncTask bit is forced on regardless of what's passed in,
// since a Task's Job must always dispatch through the task entrypoint.
func NewTask(flags JobFlags, resume TaskResumeFunc, opts ...TaskOption) *Task {
	cfg := resolveTaskOptions(opts)

	flags = NewJobFlags(true, flags.IsChildTask(), flags.IsGroupChild(), flags.IsFuture(), flags.Priority())

	t := &Task{}
	t.Job = *NewTaskJob(flags, resume)

	if flags.IsChildTask() {
		t.child = &ChildFragment{parent: cfg.parent}
		t.parent = cfg.parent
	}
	if flags.IsGroupChild() {
		t.group = &GroupChildFragment{group: cfg.group}
	}
	if flags.IsFuture() {
		t.future = newFutureFragment(cfg.resultType)
	}

	if flags.IsChildTask() {
		if cfg.parent == nil {
			panic(WrapError("NewTask", ErrFragmentNotPresent))
		}
		cfg.parent.AddChild(t)
	}

	logTaskCreated(t)
	return t
}

// AddChild links child onto t's own children list, making it eligible for
// structural cancellation propagation from t (§4.5). The child must have
// been constructed with WithParent(t) so its ChildFragment already
// recognizes t as the sole party permitted to mutate its sibling link.
func (t *Task) AddChild(child *Task) {
	child.ChildFragment().SetNextChild(t, t.firstChild)
	t.firstChild = child
}

// IsCancelled performs a relaxed load of the cancellation bit. It is
// inherently racy with a concurrent Cancel: a false result does not imply
// the task will remain uncancelled.
func (t *Task) IsCancelled() bool {
	return statusWord(t.status.Load()).cancelled()
}

// ChildFragment returns the task's ChildFragment. Panics with
// ErrFragmentNotPresent if flags.IsChildTask() is false.
func (t *Task) ChildFragment() *ChildFragment {
	if !t.Flags().IsChildTask() || t.child == nil {
		panic(WrapError("ChildFragment", ErrFragmentNotPresent))
	}
	return t.child
}

// GroupChildFragment returns the task's GroupChildFragment. Panics with
// ErrFragmentNotPresent if flags.IsGroupChild() is false.
func (t *Task) GroupChildFragment() *GroupChildFragment {
	if !t.Flags().IsGroupChild() || t.group == nil {
		panic(WrapError("GroupChildFragment", ErrFragmentNotPresent))
	}
	return t.group
}

// FutureFragment returns the task's FutureFragment. Panics with
// ErrFragmentNotPresent if flags.IsFuture() is false.
func (t *Task) FutureFragment() *FutureFragment {
	if !t.Flags().IsFuture() || t.future == nil {
		panic(WrapError("FutureFragment", ErrFragmentNotPresent))
	}
	return t.future
}

// CompleteFuture completes the task's future with result (or err) and
// enqueues its waiters onto executor; see FutureFragment.CompleteFuture.
// Panics with ErrFragmentNotPresent if flags.IsFuture() is false.
func (t *Task) CompleteFuture(result any, err error, executor ExecutorRef) {
	t.FutureFragment().CompleteFuture(result, err, executor)
}

// CompleteAsGroupChild completes the task's future and, for a group-child
// task, offers the settled result to its owning Group (§4.5: "on that
// child's future completion, GroupChildFragment's owning task calls
// Group.offer"). A group-child task's completion site should call this
// instead of FutureFragment().CompleteFuture directly.
func (t *Task) CompleteAsGroupChild(result any, err error, executor ExecutorRef) {
	t.FutureFragment().CompleteFuture(result, err, executor)
	if t.Flags().IsGroupChild() {
		t.GroupChildFragment().Group().offer(t, result, err)
	}
}

// ResumeContext returns the task's current activation record.
func (t *Task) ResumeContext() *Context { return t.resumeContext }

// SetResumeContext commits a new activation record as the task's current
// one. This is the "current activation record is committed to the task's
// resume_context before control is released" step at every suspension
// point (§5).
func (t *Task) SetResumeContext(c *Context) { t.resumeContext = c }

// ReleaseContext returns a Context previously allocated via NewContext (or
// one of its variant constructors) to t's own scratch allocator, for reuse
// by a later NewContext call. c must not be reachable from any other
// resume chain once released.
func (t *Task) ReleaseContext(c *Context) { t.alloc.freeContext(c) }

// FragmentLayout describes which trailing fragments a Task with the given
// flags carries, in canonical order, for diagnostic/debugging parity with
// the spec's C ABI offset-by-flag-set design (§9's "single
// fragment_offsets helper" note). Go realizes the fragments as optional
// pointers rather than a physical trailing array, so these are logical
// slot indices (0, 1, or 2), not byte offsets.
type FragmentLayout struct {
	HasChild      bool
	ChildSlot     int
	HasGroup      bool
	GroupSlot     int
	HasFuture     bool
	FutureSlot    int
	TrailingCount int
}

// FragmentOffsets computes the canonical fragment presence/order for a
// given flags word: ChildFragment, then GroupChildFragment, then
// FutureFragment (FutureFragment is variable-sized in the spec's ABI and
// must be last).
func FragmentOffsets(flags JobFlags) FragmentLayout {
	var layout FragmentLayout
	slot := 0
	if flags.IsChildTask() {
		layout.HasChild = true
		layout.ChildSlot = slot
		slot++
	}
	if flags.IsGroupChild() {
		layout.HasGroup = true
		layout.GroupSlot = slot
		slot++
	}
	if flags.IsFuture() {
		layout.HasFuture = true
		layout.FutureSlot = slot
		slot++
	}
	layout.TrailingCount = slot
	return layout
}
