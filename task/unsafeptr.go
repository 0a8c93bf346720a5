package task

import "unsafe"

// pointerToUintptr, uintptrToPointer, taskToUintptr, and uintptrToTask
// convert between live pointers and the tagged-pointer representation
// packed into statusWord / waitQueueWord. Per §9's "Atomic tagged
// pointers" design note, these words require alignment guarantees on the
// underlying pointer, which Go guarantees for any pointer-aligned
// allocation; the caller (status.go, future.go) is responsible for
// keeping the referenced value alive through some other live reference
// for as long as it may be recovered from a packed word (status records
// and waiting tasks are always also reachable via a goroutine's own
// stack/locals, or via the chain/list itself, while queued).
func pointerToUintptr(p *TaskStatusRecordNode) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func uintptrToPointer(u uintptr) unsafe.Pointer {
	return unsafe.Pointer(u) //nolint:govet // intentional tagged-pointer recovery, see doc comment
}

func taskToUintptr(t *Task) uintptr {
	return uintptr(unsafe.Pointer(t))
}

func uintptrToTask(u uintptr) *Task {
	return (*Task)(unsafe.Pointer(u)) //nolint:govet // intentional tagged-pointer recovery, see doc comment
}
