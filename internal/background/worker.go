package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"parish-liturgy-backend/pkg/logger"
)

// Task is a unit of deferred work such as warming avatars or rebuilding a
// cached script.
type Task struct {
	Name     string
	Run      func(ctx context.Context) error
	Timeout  time.Duration
	Attempts int
	Backoff  time.Duration
}

var (
	ErrWorkerNotStarted = errors.New("worker pool not started")
	ErrTaskPending      = errors.New("task already pending")
	errWorkerStopping   = errors.New("worker pool is stopping")
)

type Options struct {
	Workers   int
	QueueSize int
}

// Pool runs tasks on a fixed set of goroutines. Tasks with the same name are
// deduplicated while one is pending or running.
type Pool struct {
	opts Options

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	pending map[string]struct{}

	queue chan Task
	wg    sync.WaitGroup
}

var (
	taskMetricsOnce     sync.Once
	taskRunsTotal       *prometheus.CounterVec
	taskDurationSeconds *prometheus.HistogramVec
)

func initTaskMetrics() {
	taskMetricsOnce.Do(func() {
		taskRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parish_liturgy",
			Subsystem: "tasks",
			Name:      "runs_total",
			Help:      "Background task attempts by outcome",
		}, []string{"task", "status"})

		taskDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "parish_liturgy",
			Subsystem: "tasks",
			Name:      "duration_seconds",
			Help:      "Duration of background task attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"task"})
	})
}

func NewPool(opts Options) *Pool {
	initTaskMetrics()

	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 32
	}

	return &Pool{
		opts:    opts,
		queue:   make(chan Task, opts.QueueSize),
		pending: make(map[string]struct{}),
	}
}

func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.started = true

	for i := 0; i < p.opts.Workers; i++ {
		p.wg.Add(1)
		go p.loop()
	}
}

// Submit queues task. It fails when the pool is not running or a task with
// the same name has not finished yet.
func (p *Pool) Submit(task Task) error {
	if task.Name == "" || task.Run == nil {
		return errors.New("task needs a name and a runner")
	}

	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrWorkerNotStarted
	}
	if _, exists := p.pending[task.Name]; exists {
		p.mu.Unlock()
		return ErrTaskPending
	}
	p.pending[task.Name] = struct{}{}
	ctx := p.ctx
	p.mu.Unlock()

	select {
	case p.queue <- task:
		return nil
	case <-ctx.Done():
		p.release(task.Name)
		return errWorkerStopping
	}
}

func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return nil
	}
	cancel := p.cancel
	p.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task := <-p.queue:
			p.process(task)
		}
	}
}

func (p *Pool) process(task Task) {
	defer p.release(task.Name)

	attempts := task.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 && task.Backoff > 0 {
			timer := time.NewTimer(task.Backoff)
			select {
			case <-timer.C:
			case <-p.ctx.Done():
				timer.Stop()
				logger.Warn("Background task canceled", map[string]interface{}{"task": task.Name, "attempt": attempt})
				return
			}
		}

		err = p.attempt(task)
		if err == nil {
			logger.Debug("Background task completed", map[string]interface{}{"task": task.Name, "attempt": attempt})
			return
		}
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Warn("Background task attempt failed", map[string]interface{}{"task": task.Name, "attempt": attempt, "error": err.Error()})
	}

	logger.Error(err, "Background task gave up", map[string]interface{}{"task": task.Name, "attempts": attempts})
}

func (p *Pool) attempt(task Task) (err error) {
	start := time.Now()
	status := "success"

	ctx := p.ctx
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			status = "failure"
			if errors.Is(err, context.Canceled) {
				status = "canceled"
			}
		}
		taskDurationSeconds.WithLabelValues(task.Name).Observe(time.Since(start).Seconds())
		taskRunsTotal.WithLabelValues(task.Name, status).Inc()
	}()

	return task.Run(ctx)
}

func (p *Pool) release(name string) {
	p.mu.Lock()
	delete(p.pending, name)
	p.mu.Unlock()
}
