package threadpool

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vparikh/threadpool/internal/testutil"
	"github.com/vparikh/threadpool/pkg/metrics"
)

func newTestPool(t *testing.T, workers int) (*Pool, *metrics.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	pool, err := NewWithRegistry(workers, "test", reg)
	testutil.AssertNoError(t, err)
	return pool, pool.registry
}

func TestMetricsCounters(t *testing.T) {
	pool, reg := newTestPool(t, 2)
	defer pool.Shutdown()

	okFut, err := Submit(pool, func() (int, error) { return 1, nil })
	testutil.AssertNoError(t, err)

	failFut, err := Submit(pool, func() (int, error) { return 0, errors.New("boom") })
	testutil.AssertNoError(t, err)

	_, err = okFut.Wait()
	testutil.AssertNoError(t, err)
	_, err = failFut.Wait()
	testutil.AssertError(t, err)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksSubmitted.WithLabelValues("test")), 2.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksExecuted.WithLabelValues("test")), 2.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksFailed.WithLabelValues("test")), 1.0)
}

func TestMetricsWorkerGauge(t *testing.T) {
	pool, reg := newTestPool(t, 3)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PoolWorkers.WithLabelValues("test")), 3.0)

	pool.Shutdown()
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.PoolWorkers.WithLabelValues("test")), 0.0)
}

func TestMetricsAbortedOnShutdown(t *testing.T) {
	pool, reg := newTestPool(t, 1)

	gate := make(chan struct{})
	started := make(chan struct{})
	blocker, err := pool.SubmitFunc(func() error {
		close(started)
		<-gate
		return nil
	})
	testutil.AssertNoError(t, err)

	// The blocker must be executing, not queued, so the drain below only
	// sees the three counted tasks.
	<-started

	queued := make([]*Future[int], 3)
	for i := range queued {
		queued[i], err = Submit(pool, func() (int, error) { return 0, nil })
		testutil.AssertNoError(t, err)
	}

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	// Release the worker only after shutdown has drained the queue.
	waitForDrain(t, pool)
	close(gate)
	<-done

	_, err = blocker.Wait()
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.TasksAborted.WithLabelValues("test")), 3.0)
}
