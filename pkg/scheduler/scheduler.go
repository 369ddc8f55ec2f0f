package scheduler

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vparikh/threadpool/pkg/common/validation"
	"github.com/vparikh/threadpool/pkg/metrics"
	"github.com/vparikh/threadpool/pkg/threadpool"
)

// Config holds scheduler configuration.
type Config struct {
	// Pool executes the scheduled submissions. If nil, the scheduler owns
	// a private 4-worker pool and shuts it down on Stop.
	Pool *threadpool.Pool

	// Location for cron schedule evaluation. Defaults to time.Local.
	Location *time.Location

	// TickInterval is how often due tasks are checked (default: 50ms).
	TickInterval time.Duration

	// Name identifies the scheduler in log output and metric labels.
	// Defaults to "scheduler".
	Name string

	// Logger receives submission diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics controls Prometheus instrumentation. Disabled by default.
	Metrics metrics.Config
}

// Entry describes a scheduled task.
type Entry struct {
	ID       string
	NextRun  time.Time
	Interval time.Duration // zero for one-time and cron tasks
	Created  time.Time
}

type scheduledTask struct {
	id       string
	fn       func() error
	runAt    time.Time
	interval time.Duration
	schedule cron.Schedule
	created  time.Time
}

// Scheduler submits tasks to a pool at fixed times, fixed intervals or cron
// schedules.
type Scheduler struct {
	pool         *threadpool.Pool
	ownPool      bool
	location     *time.Location
	tickInterval time.Duration
	name         string
	logger       *slog.Logger
	cronParser   cron.Parser
	registry     *metrics.Registry

	mu      sync.Mutex
	tasks   map[string]*scheduledTask
	running bool
	done    chan struct{}
	stopped chan struct{}
}

// New creates a scheduler submitting to the given pool.
func New(pool *threadpool.Pool) (*Scheduler, error) {
	return NewWithConfig(Config{Pool: pool})
}

// NewWithConfig creates a scheduler with custom configuration.
func NewWithConfig(cfg Config) (*Scheduler, error) {
	pool := cfg.Pool
	ownPool := false
	if pool == nil {
		var err error
		pool, err = threadpool.New(4)
		if err != nil {
			return nil, err
		}
		ownPool = true
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}

	name := cfg.Name
	if name == "" {
		name = "scheduler"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		pool:         pool,
		ownPool:      ownPool,
		location:     location,
		tickInterval: tickInterval,
		name:         name,
		logger:       logger,
		cronParser:   cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		tasks:        make(map[string]*scheduledTask),
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Registry != nil {
			s.registry = metrics.NewRegistry(cfg.Metrics.Registry)
		} else {
			s.registry = metrics.DefaultRegistry
		}
	}

	return s, nil
}

// Schedule registers a one-time task to run at runAt.
func (s *Scheduler) Schedule(id string, fn func() error, runAt time.Time) error {
	return s.add(&scheduledTask{id: id, fn: fn, runAt: runAt})
}

// ScheduleAfter registers a one-time task to run after delay.
func (s *Scheduler) ScheduleAfter(id string, fn func() error, delay time.Duration) error {
	return s.Schedule(id, fn, time.Now().Add(delay))
}

// ScheduleRepeating registers a task to run every interval, starting one
// interval from now.
func (s *Scheduler) ScheduleRepeating(id string, fn func() error, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("schedule %q: interval must be positive, got %v", id, interval)
	}
	return s.add(&scheduledTask{
		id:       id,
		fn:       fn,
		runAt:    time.Now().Add(interval),
		interval: interval,
	})
}

// ScheduleCron registers a task driven by a cron expression (with seconds
// field, e.g. "*/5 * * * * *").
func (s *Scheduler) ScheduleCron(id string, cronExpr string, fn func() error) error {
	schedule, err := s.cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("schedule %q: invalid cron expression %q: %w", id, cronExpr, err)
	}
	return s.add(&scheduledTask{
		id:       id,
		fn:       fn,
		runAt:    schedule.Next(time.Now().In(s.location)),
		schedule: schedule,
	})
}

func (s *Scheduler) add(task *scheduledTask) error {
	if err := validation.ValidateNotEmpty("scheduler", "id", task.id); err != nil {
		return err
	}
	if task.fn == nil {
		return validation.ValidateNotNil("scheduler", "fn", nil)
	}
	task.created = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.id]; exists {
		return fmt.Errorf("schedule %q: task already scheduled", task.id)
	}
	s.tasks[task.id] = task
	return nil
}

// Cancel removes a scheduled task. It reports whether the id was known.
// A task already handed to the pool is not recalled.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.tasks[id]
	delete(s.tasks, id)
	return exists
}

// CancelAll removes every scheduled task.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]*scheduledTask)
}

// List returns the scheduled entries ordered by id.
func (s *Scheduler) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.tasks))
	for _, task := range s.tasks {
		entries = append(entries, Entry{
			ID:       task.id,
			NextRun:  task.runAt,
			Interval: task.interval,
			Created:  task.created,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Start begins the tick loop. It fails if the scheduler is already running.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler %q already running", s.name)
	}
	s.running = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})

	go s.run(s.done, s.stopped)
	return nil
}

// Stop halts the tick loop and blocks until it has exited. If the scheduler
// owns its pool, the pool is shut down as well, whether or not the scheduler
// was ever started. Stop is safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	running := s.running
	s.running = false
	done, stopped := s.done, s.stopped
	s.mu.Unlock()

	if running {
		close(done)
		<-stopped
	}

	if s.ownPool {
		// Pool.Shutdown is idempotent, so repeated Stops are safe.
		s.pool.Shutdown()
	}
}

func (s *Scheduler) run(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			s.dispatch(now.In(s.location))
		}
	}
}

// dispatch submits every due task and reschedules repeating and cron tasks.
func (s *Scheduler) dispatch(now time.Time) {
	s.mu.Lock()
	var due []*scheduledTask
	for id, task := range s.tasks {
		if task.runAt.After(now) {
			continue
		}
		due = append(due, task)

		switch {
		case task.schedule != nil:
			task.runAt = task.schedule.Next(now)
		case task.interval > 0:
			task.runAt = now.Add(task.interval)
		default:
			delete(s.tasks, id)
		}
	}
	s.mu.Unlock()

	for _, task := range due {
		if _, err := s.pool.SubmitFunc(task.fn); err != nil {
			s.logger.Error("scheduled submission failed",
				"scheduler", s.name,
				"task", task.id,
				"error", err,
			)
			continue
		}
		if s.registry != nil {
			s.registry.TasksScheduled.WithLabelValues(s.name).Inc()
		}
	}
}
