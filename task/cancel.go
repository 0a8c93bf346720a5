package task

// Cancel sets the task's cancellation bit. It is idempotent: a second
// call has no further effect, matching the teacher's AbortController/
// AbortSignal "already aborted" early-return (abort.go). Cancellation is
// sticky and monotonic per §5: once set, never cleared.
//
// Cancellation is cooperative: Cancel does not interrupt execution. It
// propagates structurally — cancelling a task cancels all its children
// (via ChildFragment's intrusive list) and, for a group-child task,
// calls the owning TaskGroup's cancelAll, which immediately cancels every
// outstanding child of that group and offers each ErrTaskCancelled
// (§4.5, §5).
func (t *Task) Cancel() {
	if !t.cancelOnce() {
		return
	}
	logTaskCancelled(t)

	for c := t.firstChild; c != nil; {
		next := c.ChildFragment().NextChild()
		c.Cancel()
		c = next
	}
	if t.Flags().IsGroupChild() && t.group != nil && t.group.group != nil {
		t.group.group.cancelAll()
	}
}
