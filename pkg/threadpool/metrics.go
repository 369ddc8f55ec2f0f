package threadpool

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vparikh/threadpool/pkg/metrics"
)

// NewWithMetrics creates a pool with Prometheus instrumentation enabled on
// the default registerer. The name labels every instrument emitted for this
// pool.
func NewWithMetrics(workerCount int, name string) (*Pool, error) {
	return NewWithConfig(Config{
		WorkerCount: workerCount,
		Name:        name,
		Metrics:     metrics.DefaultConfig(),
	})
}

// NewWithRegistry creates an instrumented pool whose metrics are registered
// with the given registerer. Use a separate registry per pool to avoid
// duplicate-registration conflicts when several instrumented pools share a
// process.
func NewWithRegistry(workerCount int, name string, reg prometheus.Registerer) (*Pool, error) {
	return NewWithConfig(Config{
		WorkerCount: workerCount,
		Name:        name,
		Metrics: metrics.Config{
			Enabled:  true,
			Registry: reg,
		},
	})
}
