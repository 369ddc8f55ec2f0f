/*
Package threadpool implements a fixed-size worker pool over a single
mutex/condvar-guarded FIFO queue. Tasks of arbitrary result types share one
queue: each submission builds a result-typed task, detaches its Future, and
erases the task into the queue behind a minimal run/abort interface.

Basic usage:

	pool, err := threadpool.New(4)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Shutdown()

	fut, err := threadpool.Submit(pool, func() (string, error) {
		return strings.ToUpper("hello"), nil
	})
	if err != nil {
		log.Printf("submit failed: %v", err)
	}

	value, err := fut.Wait()

Result handling:

Every future resolves exactly once. A task that returns an error or panics
delivers that failure to its future; the pool itself stays healthy and
continues serving other tasks. Wait re-surfaces the failure to the one caller
holding the handle:

	fut, _ := threadpool.Submit(pool, func() (int, error) {
		return 0, errors.New("boom")
	})
	if _, err := fut.Wait(); err != nil {
		// "boom"
	}

Select-based waiting uses Done:

	select {
	case <-fut.Done():
		value, err := fut.Wait() // does not block once Done is closed
	case <-time.After(time.Second):
	}

Ordering and shutdown:

Tasks are dequeued in strict submission order (observable with a single
worker); completion order across workers is not guaranteed. Submit never
blocks — the queue is unbounded and there is no backpressure. Shutdown is the
only way to stop the pool: it rejects further submissions, wakes and joins
every worker, and fails any still-queued future with ErrPoolClosed so no
caller deadlocks on Wait.

Instrumentation:

NewWithMetrics / NewWithRegistry enable Prometheus counters, gauges and a
task-duration histogram from pkg/metrics, labeled with the pool name.
*/
package threadpool
