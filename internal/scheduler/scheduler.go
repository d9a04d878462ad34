package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled     = "Job scheduled"
	LogMsgJobEnqueueFailed = "Failed to enqueue scheduled job"
)

// Scheduler hands jobs to the worker pool on fixed intervals or cron schedules
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
	ctx        context.Context
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler. Cron schedules are evaluated in UTC.
func New(ctx context.Context, pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(cron.WithLocation(time.UTC)),
		ctx:        ctx,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// ScheduleCron registers a job on a standard cron spec such as "@daily" or "0 3 * * *".
// The job starts firing once Start is called.
func (s *Scheduler) ScheduleCron(spec string, name string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() { s.enqueue(job) })
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	logger.FromContext(s.ctx).Info(LogMsgJobScheduled, "job", name, "schedule", spec)
	return nil
}

// Next returns the next time any cron job fires, or the zero time when none is registered
func (s *Scheduler) Next() time.Time {
	var next time.Time
	for _, e := range s.cron.Entries() {
		if t := e.Schedule.Next(time.Now()); next.IsZero() || t.Before(next) {
			next = t
		}
	}
	return next
}

// Start starts the cron schedules. Interval schedules start as soon as they are registered.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs and waits for pending enqueues
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		<-s.cron.Stop().Done()
	})
	s.wg.Wait()
}

// enqueue blocks while the pool is full, giving up when the scheduler stops
func (s *Scheduler) enqueue(job worker.Job) {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := s.workerPool.Enqueue(ctx, job); err != nil {
		logger.FromContext(s.ctx).Warn(LogMsgJobEnqueueFailed, "error", err)
	}
}
