// Package metrics provides Prometheus instrumentation for threadpool components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for threadpool components.
type Registry struct {
	// Pool Metrics
	TasksSubmitted *prometheus.CounterVec
	TasksExecuted  *prometheus.CounterVec
	TasksFailed    *prometheus.CounterVec
	TasksAborted   *prometheus.CounterVec
	TaskDuration   *prometheus.HistogramVec
	PoolWorkers    *prometheus.GaugeVec
	PoolQueueDepth *prometheus.GaugeVec

	// Scheduler Metrics
	TasksScheduled *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by threadpool components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		TasksSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "tasks_submitted_total",
				Help:      "Total number of tasks submitted to the pool",
			},
			[]string{"pool_name"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "tasks_executed_total",
				Help:      "Total number of tasks executed by the pool",
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks that failed or panicked",
			},
			[]string{"pool_name"},
		),

		TasksAborted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "tasks_aborted_total",
				Help:      "Total number of queued tasks failed by shutdown",
			},
			[]string{"pool_name"},
		),

		TaskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		PoolWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "workers",
				Help:      "Number of workers in the pool",
			},
			[]string{"pool_name"},
		),

		PoolQueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "threadpool",
				Subsystem: "pool",
				Name:      "queued_tasks",
				Help:      "Number of tasks waiting in the queue",
			},
			[]string{"pool_name"},
		),

		TasksScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threadpool",
				Subsystem: "scheduler",
				Name:      "tasks_scheduled_total",
				Help:      "Total number of scheduled task submissions",
			},
			[]string{"scheduler_name"},
		),
	}
}
