package threadpool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	tperrors "github.com/vparikh/threadpool/pkg/common/errors"
	"github.com/vparikh/threadpool/pkg/common/validation"
	"github.com/vparikh/threadpool/pkg/metrics"
)

// Config holds configuration options for creating a pool.
type Config struct {
	// WorkerCount is the number of workers in the pool.
	// Must be greater than 0.
	WorkerCount int

	// Name identifies the pool in log output and metric labels.
	// Defaults to "pool".
	Name string

	// Logger receives worker-loop diagnostics for failed tasks.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics controls Prometheus instrumentation. Disabled by default.
	Metrics metrics.Config
}

// Pool is a fixed-size worker pool. Workers are spawned at construction and
// pull tasks from a single FIFO queue until Shutdown.
type Pool struct {
	cfg    Config
	name   string
	logger *slog.Logger

	queue *taskQueue

	// done mirrors the queue's closed flag for the workers' outer loop
	// guard; the authoritative check happens inside the wait predicate
	// under the queue lock.
	done         atomic.Bool
	wg           sync.WaitGroup
	shutdownOnce sync.Once

	submitted atomic.Int64
	executed  atomic.Int64
	failed    atomic.Int64

	registry *metrics.Registry
}

// New creates a pool with the given number of workers.
func New(workerCount int) (*Pool, error) {
	return NewWithConfig(Config{WorkerCount: workerCount})
}

// NewWithConfig creates a pool with the specified configuration.
// All workers are running when it returns.
func NewWithConfig(cfg Config) (*Pool, error) {
	if err := validation.ValidatePositive("threadpool", "WorkerCount", cfg.WorkerCount); err != nil {
		return nil, fmt.Errorf("%w: %w", tperrors.ErrPoolConstruction, err)
	}

	name := cfg.Name
	if name == "" {
		name = "pool"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pool{
		cfg:    cfg,
		name:   name,
		logger: logger,
		queue:  newTaskQueue(),
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Registry != nil {
			p.registry = metrics.NewRegistry(cfg.Metrics.Registry)
		} else {
			p.registry = metrics.DefaultRegistry
		}
		p.registry.PoolWorkers.WithLabelValues(p.name).Set(float64(cfg.WorkerCount))
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p, nil
}

// worker is the loop each pool goroutine runs: block for a task, execute it,
// repeat until shutdown is observed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for !p.done.Load() {
		e, ok := p.queue.popBlocking()
		if !ok {
			return
		}
		p.execute(id, e)
	}
}

// execute runs one envelope. A task failure is delivered to the task's
// future and logged; it never terminates the worker.
func (p *Pool) execute(id int, e envelope) {
	start := time.Now()
	err := e.run()
	p.executed.Add(1)

	if err != nil {
		p.failed.Add(1)
		p.logger.Error("task failed",
			"pool", p.name,
			"worker", id,
			"error", err,
		)
	}

	if p.registry != nil {
		p.registry.TaskDuration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
		p.registry.TasksExecuted.WithLabelValues(p.name).Inc()
		if err != nil {
			p.registry.TasksFailed.WithLabelValues(p.name).Inc()
		}
		p.registry.PoolQueueDepth.WithLabelValues(p.name).Set(float64(p.queue.len()))
	}
}

// Shutdown stops the pool: no further submissions are accepted, every
// blocked worker is woken, and Shutdown blocks until all workers have
// stopped. Tasks still queued when the workers exit are not executed; their
// futures are failed with ErrPoolClosed so no caller is left blocked.
//
// Shutdown is idempotent and safe for concurrent use; later callers block
// until the first call completes.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.done.Store(true)
		dropped := p.queue.close()
		p.wg.Wait()

		for _, e := range dropped {
			e.abort(fmt.Errorf("%w: task dropped before execution", tperrors.ErrPoolClosed))
		}

		if len(dropped) > 0 {
			p.logger.Warn("shutdown aborted queued tasks",
				"pool", p.name,
				"count", len(dropped),
			)
			if p.registry != nil {
				p.registry.TasksAborted.WithLabelValues(p.name).Add(float64(len(dropped)))
			}
		}

		if p.registry != nil {
			p.registry.PoolWorkers.WithLabelValues(p.name).Set(0)
			p.registry.PoolQueueDepth.WithLabelValues(p.name).Set(0)
		}
	})
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return p.cfg.WorkerCount
}

// QueueDepth returns the current number of tasks waiting for execution.
func (p *Pool) QueueDepth() int {
	return p.queue.len()
}

// Submitted returns the total number of tasks accepted by Submit.
func (p *Pool) Submitted() int64 {
	return p.submitted.Load()
}

// Executed returns the total number of tasks run by the workers,
// successful or not.
func (p *Pool) Executed() int64 {
	return p.executed.Load()
}

// Failed returns the total number of executed tasks that returned an error
// or panicked.
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}
