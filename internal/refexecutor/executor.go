// Package refexecutor provides the simplest faithful task.ExecutorRef so
// tests can exercise Job.RunInFullyEstablishedContext end-to-end. The executor implementation itself (thread pools,
// run-queues, priority schedulers) is explicitly out of scope for the
// core (spec §1); this package is deliberately non-normative.
package refexecutor

import (
	"sync"

	"github.com/nugmanoff/asynccore/internal/logging"
	"github.com/nugmanoff/asynccore/task"
)

// Executor is a fixed pool of worker goroutines draining a channel-backed
// job queue, grounded on the ygrebnov-workers dispatcher pattern
// (dispatcher.go: a pool of workers pulling off a task channel, tracked
// by a sync.WaitGroup) — adapted from workers.Task[R]/pool.Pool to
// task.Job/task.ExecutorRef, since ygrebnov-workers is a sibling example
// rather than the teacher. It implements exactly task.ExecutorRef: no
// priority scheduling, no work stealing (both explicit non-goals).
type Executor struct {
	jobs chan *task.Job
	wg   sync.WaitGroup
}

// New starts an Executor with workerCount worker goroutines draining a
// queue of depth queueDepth. Both are clamped to at least their minimum
// sensible value (1 worker, an unbuffered queue).
func New(workerCount, queueDepth int) *Executor {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueDepth < 0 {
		queueDepth = 0
	}
	e := &Executor{jobs: make(chan *task.Job, queueDepth)}
	for i := 0; i < workerCount; i++ {
		e.wg.Add(1)
		go e.runWorker()
	}
	return e
}

func (e *Executor) runWorker() {
	defer e.wg.Done()
	for job := range e.jobs {
		e.execute(job)
	}
}

// execute runs one job, recovering a panicking resume/run function so one
// misbehaving job can't take down the whole worker pool — matching
// ygrebnov-workers/worker.go's execute() recover-and-report convention.
func (e *Executor) execute(job *task.Job) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger().Err().
				Interface("panic", r).
				Log("refexecutor: job panicked")
		}
	}()
	// The resumeContext passed to RunInFullyEstablishedContext is
	// informational only: every resume/run function installed by this
	// core's own machinery (Context.Return, Context.Yield, NewTask)
	// either ignores it in favor of a closed-over continuation or reads
	// Task.ResumeContext() itself, so this executor never needs to
	// supply one.
	job.RunInFullyEstablishedContext(e, nil)
}

// Enqueue implements task.ExecutorRef.
func (e *Executor) Enqueue(job *task.Job) {
	e.jobs <- job
}

// Equal implements task.ExecutorRef.
func (e *Executor) Equal(other task.ExecutorRef) bool {
	o, ok := other.(*Executor)
	return ok && o == e
}

// Close stops accepting new jobs and waits for in-flight workers to
// drain. It is not safe to call Enqueue concurrently with Close.
func (e *Executor) Close() {
	close(e.jobs)
	e.wg.Wait()
}
