package threadpool

import (
	"sync"

	tperrors "github.com/vparikh/threadpool/pkg/common/errors"
)

// taskQueue is the unbounded FIFO shared by all submitters and workers.
// One mutex and one condition variable guard both the queue and the closed
// flag; the wait predicate is re-checked in a loop so spurious wakeups are
// harmless.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []envelope
	closed bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends an envelope and wakes one idle worker. Broadcast is reserved
// for close.
func (q *taskQueue) push(e envelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return tperrors.ErrPoolClosed
	}

	q.tasks = append(q.tasks, e)
	q.cond.Signal()
	return nil
}

// popBlocking blocks until a task is available or the queue is closed.
// It returns false once the queue is closed, regardless of remaining
// entries; those are handed back by close for aborting.
func (q *taskQueue) popBlocking() (envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && len(q.tasks) == 0 {
		q.cond.Wait()
	}

	if q.closed {
		return nil, false
	}

	e := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return e, true
}

// close marks the queue closed, wakes every blocked worker and returns the
// envelopes that were still queued so their futures can be failed.
func (q *taskQueue) close() []envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	drained := q.tasks
	q.tasks = nil
	q.cond.Broadcast()
	return drained
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
