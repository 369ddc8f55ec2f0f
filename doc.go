/*
Package threadpool provides a fixed-size worker pool that executes
heterogeneous tasks and hands each submitter a typed future for the result.

Core (pkg/threadpool):
  - Pool: fixed set of workers over a single mutex/condvar-guarded FIFO queue
  - Submit[R]: enqueue a task of any result type, get back a Future[R]
  - Future[R]: blocking retrieval of the eventual value or failure

Scheduling (pkg/scheduler):
  - cron and interval-based periodic submission on top of a Pool

Observability (pkg/metrics):
  - Prometheus instruments for task throughput, failures and queue depth

Example usage:

	import "github.com/vparikh/threadpool/pkg/threadpool"

	pool, _ := threadpool.New(4)
	defer pool.Shutdown()

	fut, _ := threadpool.Submit(pool, func() (int, error) {
		return 6 * 7, nil
	})

	answer, err := fut.Wait()
*/
package threadpool
