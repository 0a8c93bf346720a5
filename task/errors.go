package task

import (
	"errors"
	"fmt"
)

// Programmer errors. Each of these is a fail-fast condition per the core's
// error-handling design: they indicate a violated invariant rather than a
// recoverable runtime failure, and are raised via panic with a typed error
// value so a deferred recover can still errors.As/errors.Is against them.
var (
	// ErrWrongEntrypoint is panicked when Job.RunInFullyEstablishedContext
	// dispatches against a flags/entrypoint mismatch.
	ErrWrongEntrypoint = errors.New("task: job constructed with wrong entrypoint for its flags")

	// ErrFragmentNotPresent is panicked when a trailing fragment accessor
	// (ChildFragment, GroupChildFragment, FutureFragment) is called on a
	// Task whose corresponding flag is not set.
	ErrFragmentNotPresent = errors.New("task: fragment accessed but its flag is not set")

	// ErrFutureAlreadyCompleted is panicked on a second CompleteFuture call.
	ErrFutureAlreadyCompleted = errors.New("task: future already completed")

	// ErrOutOfOrderStatusPop is panicked when PopStatusRecord is called out
	// of LIFO order.
	ErrOutOfOrderStatusPop = errors.New("task: status record popped out of LIFO order")

	// ErrChildMutatedByNonParent is panicked when code other than the
	// owning parent mutates a ChildFragment's next-child link.
	ErrChildMutatedByNonParent = errors.New("task: child fragment mutated by non-parent")
)

// ErrTaskCancelled is the error a TaskGroup offers in place of a result for
// an outstanding group-child that was cancelled before it completed on its
// own (§4.5, §8 scenario S3). Unlike the errors above, this is not a
// programmer error: it is returned to callers of Group.Next, never
// panicked.
var ErrTaskCancelled = errors.New("task: group child cancelled before completion")

// WrapError wraps an error with a message and cause chain, matching
// errors.Is(result, cause) == true.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}

// PanicError wraps a value recovered from a panic inside task machinery
// (for example, a job's resume function).
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("task: panic recovered: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
