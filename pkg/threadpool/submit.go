package threadpool

import (
	"fmt"

	tperrors "github.com/vparikh/threadpool/pkg/common/errors"
)

// Submit enqueues fn for execution and returns the future for its result.
// The callable's arguments are whatever the closure captured at the call
// site; they are fixed at submission time.
//
// Submit is a package-level function because Go methods cannot introduce
// type parameters. It never blocks: the queue is unbounded.
func Submit[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %w", tperrors.ErrTaskSubmission, tperrors.ErrNilTask)
	}

	if p.done.Load() {
		return nil, fmt.Errorf("%w: %w", tperrors.ErrTaskSubmission, tperrors.ErrPoolClosed)
	}

	t := newTask(fn)
	// The typed handle leaves the task before it is erased into the queue.
	fut := t.fut

	if err := p.queue.push(t); err != nil {
		return nil, fmt.Errorf("%w: %w", tperrors.ErrTaskSubmission, err)
	}

	p.submitted.Add(1)
	if p.registry != nil {
		p.registry.TasksSubmitted.WithLabelValues(p.name).Inc()
		p.registry.PoolQueueDepth.WithLabelValues(p.name).Set(float64(p.queue.len()))
	}

	return fut, nil
}

// SubmitFunc enqueues a result-less callable. The returned future resolves
// when the task has run; Wait reports only the error.
func (p *Pool) SubmitFunc(fn func() error) (*Future[struct{}], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %w", tperrors.ErrTaskSubmission, tperrors.ErrNilTask)
	}

	return Submit(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}
