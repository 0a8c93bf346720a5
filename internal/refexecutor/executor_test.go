package refexecutor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nugmanoff/asynccore/task"
)

func TestExecutor_RunsSimpleJobs(t *testing.T) {
	e := New(4, 16)
	defer e.Close()

	var wg sync.WaitGroup
	var n int32
	var mu sync.Mutex
	const count = 50

	for i := 0; i < count; i++ {
		wg.Add(1)
		job := task.NewSimpleJob(task.NewJobFlags(false, false, false, false, task.PriorityDefault), func(job *task.Job, executor task.ExecutorRef) {
			defer wg.Done()
			mu.Lock()
			n++
			mu.Unlock()
		})
		e.Enqueue(job)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.EqualValues(t, count, n)
}

func TestExecutor_RecoversPanickingJob(t *testing.T) {
	e := New(1, 1)
	defer e.Close()

	done := make(chan struct{})
	job := task.NewSimpleJob(task.NewJobFlags(false, false, false, false, task.PriorityDefault), func(job *task.Job, executor task.ExecutorRef) {
		defer close(done)
		panic("boom")
	})
	e.Enqueue(job)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	// the pool must still accept and run work after a panic
	next := make(chan struct{})
	job2 := task.NewSimpleJob(task.NewJobFlags(false, false, false, false, task.PriorityDefault), func(job *task.Job, executor task.ExecutorRef) {
		close(next)
	})
	e.Enqueue(job2)
	select {
	case <-next:
	case <-time.After(time.Second):
		t.Fatal("worker pool did not survive a panicking job")
	}
}

func TestExecutor_Equal(t *testing.T) {
	e1 := New(1, 0)
	defer e1.Close()
	e2 := New(1, 0)
	defer e2.Close()

	require.True(t, e1.Equal(e1))
	require.False(t, e1.Equal(e2))
}
