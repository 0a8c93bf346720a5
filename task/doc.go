// Package task provides the structured-concurrency async task runtime
// ABI: jobs, activation-record contexts, futures, groups, and the
// task-local value stack, independent of any particular executor.
//
// # Architecture
//
// A [Job] is the minimal schedulable unit: a function pointer plus a
// packed flags word, dispatched through [Job.RunInFullyEstablishedContext]
// by whatever executor the caller supplies. [Task] extends Job into a
// heap-allocated async task, adding a resume [Context] chain, an atomic
// cancellation/status-record word, a task-local value stack, a scratch
// [Allocator], and optional trailing fragments — [ChildFragment],
// [GroupChildFragment], [FutureFragment] — selected by [JobFlags].
//
// [Group] coordinates a set of group-child tasks spawned together,
// collecting completions into a FIFO queue drained by [Group.Next].
//
// # Execution Model
//
// This package never runs a goroutine or owns a run queue itself: every
// hop across a suspension point goes through a caller-supplied
// [ExecutorRef]. [Context.Return] and [Context.Yield] always enqueue
// explicitly onto the resume executor rather than special-casing "same
// executor as the caller" — see the package's design notes for why.
//
// # Thread Safety
//
// [Task.Cancel], [FutureFragment.WaitFuture], and
// [FutureFragment.CompleteFuture] are safe to call from any goroutine.
// [Task.PushLocal]/[Task.PopLocal] and [Task.PushStatusRecord]/
// [Task.PopStatusRecord] are only safe from the task's own owning
// goroutine (the one currently running its Job); see their doc comments.
//
// # ABI Invariants
//
// Go has no flexible trailing arrays or C-style unions, so the layout
// invariants this runtime's spec describes in C-ABI terms (status word
// alignment, fragment presence by flag) are realized as optional pointer
// fields plus documented and tested (not compiler-enforced) invariants —
// see sizeof_test.go.
package task
