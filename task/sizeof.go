package task

// These constants are verified against golang.org/x/sys/cpu in
// sizeof_test.go, matching the teacher's sizeof.go/align_test.go split:
// plain constants here, unsafe.Sizeof/Offsetof assertions kept in tests.
const (
	// sizeOfCacheLine is the assumed CPU cache line size used to reason
	// about false sharing in the packed atomic words this package relies
	// on (Task.status, FutureFragment.waitQueue). 128 covers both x86-64
	// (64B) and Apple Silicon/ARM64 (128B) lines.
	sizeOfCacheLine = 128

	// wordSize is the platform pointer width in bytes, the unit the
	// spec's ABI discussion expresses alignment requirements in (e.g.
	// "aligned to twice natural word size" for the packed status word).
	wordSize = 8
)
