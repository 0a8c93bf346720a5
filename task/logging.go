package task

import "github.com/nugmanoff/asynccore/internal/logging"

// logTaskCreated and logTaskCancelled are the task package's hooks into
// the shared structured logger, grounded on the teacher's LogPromiseResolved/
// LogPromiseRejected/LogTaskPanicked category-specific helper functions
// (eventloop/logging.go): small, named functions around the package-level
// logger rather than inline Debug() calls scattered through task.go/cancel.go.

func logTaskCreated(t *Task) {
	logging.Logger().Debug().
		Uint64("task", uint64(taskToUintptr(t))).
		Bool("isChild", t.Flags().IsChildTask()).
		Bool("isGroupChild", t.Flags().IsGroupChild()).
		Bool("isFuture", t.Flags().IsFuture()).
		Str("priority", t.Flags().Priority().String()).
		Log("task created")
}

func logTaskCancelled(t *Task) {
	logging.Logger().Debug().
		Uint64("task", uint64(taskToUintptr(t))).
		Log("task cancelled")
}
