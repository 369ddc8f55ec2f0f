package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(prometheus.NewRegistry())

	reg.TasksSubmitted.WithLabelValues("pool-a").Inc()
	reg.TasksSubmitted.WithLabelValues("pool-a").Inc()
	reg.TasksSubmitted.WithLabelValues("pool-b").Inc()

	if got := promtestutil.ToFloat64(reg.TasksSubmitted.WithLabelValues("pool-a")); got != 2 {
		t.Errorf("pool-a submitted = %v, want 2", got)
	}
	if got := promtestutil.ToFloat64(reg.TasksSubmitted.WithLabelValues("pool-b")); got != 1 {
		t.Errorf("pool-b submitted = %v, want 1", got)
	}
}

func TestSeparateRegistries(t *testing.T) {
	// Two registries on distinct registerers must not conflict.
	a := NewRegistry(prometheus.NewRegistry())
	b := NewRegistry(prometheus.NewRegistry())

	a.PoolWorkers.WithLabelValues("pool").Set(4)
	b.PoolWorkers.WithLabelValues("pool").Set(8)

	if got := promtestutil.ToFloat64(a.PoolWorkers.WithLabelValues("pool")); got != 4 {
		t.Errorf("registry a workers = %v, want 4", got)
	}
	if got := promtestutil.ToFloat64(b.PoolWorkers.WithLabelValues("pool")); got != 8 {
		t.Errorf("registry b workers = %v, want 8", got)
	}
}
