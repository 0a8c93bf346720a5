package task

import "sync/atomic"

// FutureStatus is the two-bit status packed into a FutureFragment's wait
// queue word.
type FutureStatus uint64

const (
	// Executing is the only non-terminal status.
	Executing FutureStatus = 0
	// Success is terminal: the result is ready.
	Success FutureStatus = 1
	// Error is terminal: the error is ready.
	Error FutureStatus = 2
)

// String returns a human-readable representation of the status.
func (s FutureStatus) String() string {
	switch s {
	case Executing:
		return "Executing"
	case Success:
		return "Success"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

const (
	futureStatusBits = 2
	futureStatusMask = uint64(1)<<futureStatusBits - 1
)

// ResultType is a value-witness-bearing descriptor for a future's result.
// This core does not need to know how to size or align the result in the
// way the spec's C ABI does (Go results are always boxed as `any`), but a
// caller-supplied ResultType is retained verbatim for introspection/
// debugging parity with the spec's "result_type: value-witness-bearing
// descriptor" field.
type ResultType struct {
	// Name is a human-readable label for the result type, e.g. "int",
	// "[]byte", or a caller-defined schema name.
	Name string
}

// FutureFragment is present on a Task iff flags.IsFuture() is set. Its
// wait queue is a single atomic word packing {status, head of waiters};
// waiters are threaded through each waiting task's
// Job.nextWaitingTaskSlot (scheduler-private slot 0).
type FutureFragment struct {
	waitQueue atomic.Uint64

	resultType ResultType

	// result and err hold the settled value; result is valid iff the
	// settled status is Success, err iff Error. Per the monotonicity
	// invariant, once set these never change again.
	result any
	err    error
}

func newFutureFragment(rt ResultType) *FutureFragment {
	return &FutureFragment{resultType: rt}
}

// ResultType returns the future's result type descriptor.
func (f *FutureFragment) ResultType() ResultType { return f.resultType }

func packWaitQueue(status FutureStatus, head *Task) uint64 {
	return uint64(status)&futureStatusMask | taskToUintptr(head)<<futureStatusBits
}

func unpackWaitQueueStatus(w uint64) FutureStatus {
	return FutureStatus(w & futureStatusMask)
}

func unpackWaitQueueHead(w uint64) *Task {
	return uintptrToTask(uintptr(w >> futureStatusBits))
}

// WaitFuture implements the spec's wait_future protocol. If the future is
// still Executing, waitingTask is pushed onto the head of the waiter list
// and Executing is returned; otherwise the already-settled status is
// returned immediately and the caller should read Result/Err.
func (f *FutureFragment) WaitFuture(waitingTask *Task) FutureStatus {
	for {
		raw := f.waitQueue.Load()
		status := unpackWaitQueueStatus(raw)
		if status != Executing {
			return status
		}
		head := unpackWaitQueueHead(raw)
		*waitingTask.nextWaitingTaskSlot() = taskToUintptr(head)
		next := packWaitQueue(Executing, waitingTask)
		if f.waitQueue.CompareAndSwap(raw, next) {
			return Executing
		}
	}
}

// Result returns the settled success value. Only meaningful once the
// future's status is Success.
func (f *FutureFragment) Result() any { return f.result }

// Err returns the settled error value. Only meaningful once the future's
// status is Error.
func (f *FutureFragment) Err() error { return f.err }

// CompleteFuture implements the spec's complete_future protocol: writes
// the result (or error), atomically transitions the wait queue from
// {Executing, head} to {status, nil}, and enqueues every detached waiter
// onto executor, in LIFO order of registration (a consequence of the
// singly linked push-at-head discipline; the design deliberately does not
// promise fairness, per spec §4.4).
//
// A second completion attempt is a programmer error: the CAS will
// observe a non-Executing status and this panics with
// ErrFutureAlreadyCompleted, matching the spec's documented
// "should abort in debug" failure policy.
func (f *FutureFragment) CompleteFuture(result any, err error, executor ExecutorRef) {
	status := Success
	if err != nil {
		status = Error
	}

	raw := f.waitQueue.Load()
	if unpackWaitQueueStatus(raw) != Executing {
		panic(WrapError("CompleteFuture", ErrFutureAlreadyCompleted))
	}
	head := unpackWaitQueueHead(raw)

	// Write the result/error before the CAS, per spec: the CAS is the
	// release operation any waiter's dequeue acquires against, so the
	// write must happen-before it, not after.
	if err != nil {
		f.err = err
	} else {
		f.result = result
	}

	next := packWaitQueue(status, nil)
	if !f.waitQueue.CompareAndSwap(raw, next) {
		// Lost a race against a concurrent completer: a second
		// completion attempt is a programmer error per spec §4.4.
		panic(WrapError("CompleteFuture", ErrFutureAlreadyCompleted))
	}

	f.resumeWaiters(head, executor)
}

// resumeWaiters walks the list detached from the wait queue (LIFO order
// of registration) and enqueues each waiter's Job onto executor.
func (f *FutureFragment) resumeWaiters(head *Task, executor ExecutorRef) {
	for waiter := head; waiter != nil; {
		next := uintptrToTask(*waiter.nextWaitingTaskSlot())
		executor.Enqueue(&waiter.Job)
		waiter = next
	}
}
