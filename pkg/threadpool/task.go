package threadpool

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// envelope is the type-erased unit of work held by the queue. The typed
// result has already been routed to the task's Future before erasure, so a
// single queue can carry tasks of arbitrary result types.
type envelope interface {
	// run executes the captured callable exactly once and delivers the
	// outcome into the future. The returned error mirrors the failure
	// delivered to the future and is used for worker diagnostics only.
	run() error

	// abort fails the future without executing the callable. Used for
	// tasks still queued when the pool shuts down.
	abort(err error)
}

// Future is the caller-owned handle for observing a task's eventual outcome.
// It is satisfied exactly once, by the worker that executes the task or by
// shutdown aborting it.
type Future[R any] struct {
	once  sync.Once
	done  chan struct{}
	value R
	err   error
}

// Done returns a channel that is closed when the task has completed or failed.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task has completed and returns its value, or the
// error the task produced (including recovered panics and shutdown aborts).
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.value, f.err
}

func (f *Future[R]) complete(value R, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// task pairs a result-typed callable with its future. Arguments are captured
// by the closure at submission time.
type task[R any] struct {
	fn  func() (R, error)
	fut *Future[R]
}

func newTask[R any](fn func() (R, error)) *task[R] {
	return &task[R]{
		fn:  fn,
		fut: &Future[R]{done: make(chan struct{})},
	}
}

func (t *task[R]) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v\nStack trace:\n%s", r, debug.Stack())
			var zero R
			t.fut.complete(zero, err)
		}
	}()

	value, err := t.fn()
	t.fut.complete(value, err)
	return err
}

func (t *task[R]) abort(err error) {
	var zero R
	t.fut.complete(zero, err)
}
