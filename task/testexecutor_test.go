package task

// syncExecutor runs every enqueued Job synchronously on the calling
// goroutine, used by tests that only need to observe ordering rather than
// real concurrency (a proper concurrent ExecutorRef lives in
// internal/refexecutor, but this package can't import it without an
// import cycle).
type syncExecutor struct {
	ran []*Job
}

func (e *syncExecutor) Enqueue(job *Job) {
	e.ran = append(e.ran, job)
	job.RunInFullyEstablishedContext(e, nil)
}

func (e *syncExecutor) Equal(other ExecutorRef) bool {
	o, ok := other.(*syncExecutor)
	return ok && o == e
}

// recordingExecutor records enqueued jobs without running them, so tests
// can assert on resume order before choosing to drain them.
type recordingExecutor struct {
	queue []*Job
}

func (e *recordingExecutor) Enqueue(job *Job) {
	e.queue = append(e.queue, job)
}

func (e *recordingExecutor) Equal(other ExecutorRef) bool {
	o, ok := other.(*recordingExecutor)
	return ok && o == e
}

func (e *recordingExecutor) drain() {
	for len(e.queue) > 0 {
		job := e.queue[0]
		e.queue = e.queue[1:]
		job.RunInFullyEstablishedContext(e, nil)
	}
}
