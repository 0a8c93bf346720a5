package task

// ExecutorRef is an opaque reference to an executor capable of running
// Jobs. The core never spawns threads itself; it only ever calls
// Enqueue on an ExecutorRef supplied by the caller. Equality between two
// ExecutorRefs must be meaningful, which is why it's part of the interface
// rather than left to `==` on an arbitrary Go value. The core itself never
// calls Equal: Context.Return and Context.Yield always enqueue, even when
// the resume executor equals the current one.
type ExecutorRef interface {
	// Enqueue takes ownership of job for scheduling. The executor must
	// eventually invoke job.RunInFullyEstablishedContext(self) on some
	// thread with the "current executor" established as self.
	Enqueue(job *Job)

	// Equal reports whether other identifies the same executor.
	Equal(other ExecutorRef) bool
}

// SimpleJobFunc is the entrypoint type for a plain (non-task) Job.
type SimpleJobFunc func(job *Job, executor ExecutorRef)

// TaskResumeFunc is the entrypoint type for an AsyncTask's Job, resuming
// the task's current activation record.
type TaskResumeFunc func(t *Task, executor ExecutorRef, resumeContext *Context)

// nextWaitingTaskIndex is the scheduler-private slot reserved, by
// convention, for the future wait-queue's intrusive waiter link. It is
// slot 0; the remaining slot is left for executor-private use (intrusive
// run-queue links, etc).
const nextWaitingTaskIndex = 0

// Job is the minimal schedulable unit. It carries exactly one resume
// entrypoint, discriminated by flags.IsAsyncTask(), plus two
// scheduler-private words opaque to the job itself.
//
// Building one with a mismatched flags/entrypoint pair is a programmer
// error, not a runtime condition to recover from: NewSimpleJob and
// NewTaskJob panic with ErrWrongEntrypoint on a mismatch, and
// RunInFullyEstablishedContext checks again at dispatch time.
type Job struct {
	// schedulerPrivate is opaque to the job; by convention, slot 0 carries
	// the NextWaitingTask link when the job is queued on a future's wait
	// queue (see FutureFragment), and slot 1 is free for executor-private
	// intrusive queue bookkeeping.
	schedulerPrivate [2]uintptr

	flags JobFlags

	simpleEntry SimpleJobFunc
	taskEntry   TaskResumeFunc
}

// NewSimpleJob constructs a plain Job (flags.IsAsyncTask() == false) with
// the given run function.
func NewSimpleJob(flags JobFlags, run SimpleJobFunc) *Job {
	if flags.IsAsyncTask() {
		panic(WrapError("NewSimpleJob", ErrWrongEntrypoint))
	}
	return &Job{flags: flags, simpleEntry: run}
}

// NewTaskJob constructs a Job whose entrypoint resumes an AsyncTask
// (flags.IsAsyncTask() == true).
func NewTaskJob(flags JobFlags, resume TaskResumeFunc) *Job {
	if !flags.IsAsyncTask() {
		panic(WrapError("NewTaskJob", ErrWrongEntrypoint))
	}
	return &Job{flags: flags, taskEntry: resume}
}

// Flags returns the job's packed flags word.
func (j *Job) Flags() JobFlags { return j.flags }

// RunInFullyEstablishedContext dispatches to the job's single entrypoint.
// It must only be called when the calling thread is set up as running on
// currentExecutor. Calling this on a Job whose constructor didn't match
// its flags is a programmer error and panics with ErrWrongEntrypoint.
func (j *Job) RunInFullyEstablishedContext(currentExecutor ExecutorRef, resumeContext *Context) {
	if j.flags.IsAsyncTask() {
		if j.taskEntry == nil {
			panic(WrapError("RunInFullyEstablishedContext", ErrWrongEntrypoint))
		}
		t := taskFromJob(j)
		j.taskEntry(t, currentExecutor, resumeContext)
		return
	}
	if j.simpleEntry == nil {
		panic(WrapError("RunInFullyEstablishedContext", ErrWrongEntrypoint))
	}
	j.simpleEntry(j, currentExecutor)
}

// nextWaitingTaskSlot gives the future machinery a named, reviewable
// handle onto the scheduler-private waiter-list convention instead of a
// raw index into schedulerPrivate.
func (j *Job) nextWaitingTaskSlot() *uintptr {
	return &j.schedulerPrivate[nextWaitingTaskIndex]
}
