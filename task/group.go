package task

import (
	"context"
	"sync"
	"weak"
)

// groupRegistry tracks live groups via weak pointers for diagnostics,
// grounded directly on the teacher's registry.go (registry.data
// map[uint64]weak.Pointer[promise]): the same GC-friendly technique,
// retargeted from promises to groups.
var groupRegistry = struct {
	mu   sync.Mutex
	next uint64
	data map[uint64]weak.Pointer[Group]
}{data: make(map[uint64]weak.Pointer[Group])}

// LiveGroupCount returns the number of still-reachable registered groups.
// Intended for diagnostics and tests, not hot-path use: it sweeps and
// prunes GC'd entries on every call, matching registry.go's Scavenge
// rationale (dead weak pointers are reclaimed lazily, not eagerly).
func LiveGroupCount() int {
	groupRegistry.mu.Lock()
	defer groupRegistry.mu.Unlock()
	n := 0
	for id, wp := range groupRegistry.data {
		if wp.Value() != nil {
			n++
		} else {
			delete(groupRegistry.data, id)
		}
	}
	return n
}

// groupResult is one completed group-child's settled outcome.
type groupResult struct {
	child  *Task
	result any
	err    error
}

const groupChunkSize = 32

// groupChunk is a fixed-size node in Group's pending-completion queue,
// grounded on the teacher's ChunkedIngress (ingress.go): a chunked linked
// list sized to amortize allocation, rather than one node per completion.
type groupChunk struct {
	items   [groupChunkSize]groupResult
	next    *groupChunk
	readPos int
	pos     int
}

// Group coordinates a set of group-child tasks spawned together via Spawn,
// collecting their completions into a FIFO queue drained by Next. Grounded
// on the teacher's registry (registry.go) for outstanding-set bookkeeping
// and ChunkedIngress (ingress.go) for the pending-queue's chunked shape.
type Group struct {
	mu sync.Mutex

	head, tail *groupChunk
	length     int

	outstanding map[*Task]struct{}

	// changed is closed and replaced every time offer runs, waking any
	// Next parked on it. Captured under g.mu so there's no lost-wakeup
	// window between the "anything pending?" check and the wait itself.
	changed chan struct{}
}

// NewGroup constructs an empty Group ready to accept Spawn calls.
func NewGroup() *Group {
	g := &Group{
		outstanding: make(map[*Task]struct{}),
		changed:     make(chan struct{}),
	}

	groupRegistry.mu.Lock()
	id := groupRegistry.next
	groupRegistry.next++
	groupRegistry.data[id] = weak.Make(g)
	groupRegistry.mu.Unlock()

	return g
}

// Spawn invokes creator to construct a new group-child task (expected to
// have been built via WithGroupOption(g), setting JobFlags.IsGroupChild)
// and registers it as outstanding. The caller remains responsible for
// enqueueing the returned task onto an executor.
func (g *Group) Spawn(creator func(group *Group) *Task) *Task {
	t := creator(g)
	if !t.Flags().IsGroupChild() {
		panic(WrapError("Spawn", ErrWrongEntrypoint))
	}
	g.mu.Lock()
	g.outstanding[t] = struct{}{}
	g.mu.Unlock()
	return t
}

// offer records one group-child's settled outcome and wakes a task parked
// in Next, if any. Called by Task.CompleteAsGroupChild once the child's
// own FutureFragment has settled, and by cancelAll for a child cancelled
// before it completed. child must still be outstanding: offer is a no-op
// otherwise, so a legitimate completion and a concurrent cancellation
// racing for the same child can never both be queued.
func (g *Group) offer(child *Task, result any, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.outstanding[child]; !ok {
		return
	}
	delete(g.outstanding, child)

	if g.tail == nil || g.tail.pos == groupChunkSize {
		c := &groupChunk{}
		if g.tail == nil {
			g.head = c
		} else {
			g.tail.next = c
		}
		g.tail = c
	}
	g.tail.items[g.tail.pos] = groupResult{child: child, result: result, err: err}
	g.tail.pos++
	g.length++

	close(g.changed)
	g.changed = make(chan struct{})
}

// pop removes and returns the oldest pending completion, if any. Caller
// must hold g.mu.
func (g *Group) pop() (groupResult, bool) {
	if g.head == nil || g.head.readPos >= g.head.pos {
		return groupResult{}, false
	}
	r := g.head.items[g.head.readPos]
	g.head.items[g.head.readPos] = groupResult{}
	g.head.readPos++
	g.length--
	if g.head.readPos >= g.head.pos {
		if g.head == g.tail {
			g.head.readPos = 0
			g.head.pos = 0
		} else {
			g.head = g.head.next
		}
	}
	return r, true
}

// Next returns the next completed group-child's settled result, blocking
// until one is available, ctx is done, or the group is exhausted: no
// pending completions and no outstanding children (§8 scenario S3). ok is
// false only on exhaustion; a ctx cancellation instead returns ctx.Err()
// with ok=true, so callers can distinguish "drained" from "gave up
// waiting".
func (g *Group) Next(ctx context.Context) (result any, err error, ok bool) {
	for {
		g.mu.Lock()
		if r, popped := g.pop(); popped {
			g.mu.Unlock()
			return r.result, r.err, true
		}
		if len(g.outstanding) == 0 {
			g.mu.Unlock()
			return nil, nil, false
		}
		waitCh := g.changed
		g.mu.Unlock()

		if ctx == nil {
			<-waitCh
			continue
		}
		select {
		case <-waitCh:
		case <-ctx.Done():
			return nil, ctx.Err(), true
		}
	}
}

// cancelAll cancels every outstanding (not-yet-completed) group-child and
// offers each one ErrTaskCancelled in place of a result, per §4.5
// ("Cancellation of the parent propagates to the group, which ... cancels
// outstanding children") and §8 scenario S3 ("group's next() returns
// remaining completions, possibly in error state, and then signals
// exhaustion"). Without the offer, a cancelled child is cooperative-only
// and may never call CompleteAsGroupChild on its own, leaving it stuck in
// outstanding forever and Next blocked indefinitely. Called from
// Task.Cancel when the cancelled task is itself a group-child of g.
func (g *Group) cancelAll() {
	g.mu.Lock()
	children := make([]*Task, 0, len(g.outstanding))
	for c := range g.outstanding {
		children = append(children, c)
	}
	g.mu.Unlock()

	for _, c := range children {
		c.Cancel()
		g.offer(c, nil, ErrTaskCancelled)
	}
}
