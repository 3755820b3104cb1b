package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=worker_test

const (
	MaxAttempts    = 10
	lockKeyPrefix  = "aquafit:job:"
	minLockTTL     = 30 * time.Second
	defaultBackoff = 500 * time.Millisecond
)

var (
	ErrDuplicateJob     = errors.New("job already registered")
	ErrInvalidJob       = errors.New("invalid job")
	ErrSchedulerRunning = errors.New("scheduler already running")
	ErrJobNotFound      = errors.New("job not found")
)

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

type JobFunc func(ctx context.Context) error

type Job struct {
	Name       string
	Interval   time.Duration
	RunOnStart bool
	Run        JobFunc
}

type locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}

// Scheduler runs named jobs periodically. A run is retried with exponential
// backoff up to MaxAttempts times and holds a lock so that a job never runs
// on two instances at once.
type Scheduler struct {
	locker         locker
	metricsManager *metrics.Manager
	initialBackoff time.Duration

	mu      sync.Mutex
	jobs    []Job
	names   map[string]struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewScheduler(locker locker, metricsManager *metrics.Manager) *Scheduler {
	return &Scheduler{
		locker:         locker,
		metricsManager: metricsManager,
		initialBackoff: defaultBackoff,
		names:          make(map[string]struct{}),
	}
}

// SetInitialBackoff changes the first retry delay, used by tests.
func (s *Scheduler) SetInitialBackoff(d time.Duration) {
	s.initialBackoff = d
}

func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil || job.Interval <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidJob, job.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerRunning
	}
	if _, ok := s.names[job.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, job.Name)
	}
	s.names[job.Name] = struct{}{}
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerRunning
	}
	s.running = true
	ctx, s.cancel = context.WithCancel(ctx)

	for _, job := range s.jobs {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.loop(ctx, job)
		}()
	}

	log.Infof("worker: scheduler started with %d jobs", len(s.jobs))
	return nil
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.cancel = nil
	s.mu.Unlock()
	log.Infoln("worker: scheduler stopped")
}

// RunNow runs the named job once, outside of its schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	var (
		job   Job
		found bool
	)
	for _, j := range s.jobs {
		if j.Name == name {
			job, found = j, true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	return s.run(ctx, job)
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	if job.RunOnStart {
		if err := s.run(ctx, job); err != nil {
			log.Errorf("worker: job %s: %s", job.Name, err)
		}
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.run(ctx, job); err != nil {
				log.Errorf("worker: job %s: %s", job.Name, err)
			}
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) (err error) {
	ctx, span := tracing.GlobalWorkerTracer.Start(ctx, "worker.job."+job.Name)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	release, acquired, err := s.locker.Acquire(ctx, lockKeyPrefix+job.Name, max(job.Interval, minLockTTL))
	if err != nil {
		s.metricsManager.CounterJobFailures.WithLabelValues(job.Name).Inc()
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !acquired {
		log.Debugf("worker: job %s is running elsewhere, skipping", job.Name)
		return nil
	}
	defer func() {
		// the run ctx may be canceled already, the lock must go anyway
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			log.Errorf("worker: release lock of %s: %s", job.Name, err)
		}
	}()

	s.metricsManager.CounterJobRuns.WithLabelValues(job.Name).Inc()
	start := time.Now()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialBackoff
	b.MaxElapsedTime = 0
	attempt := 0
	err = backoff.RetryNotify(
		func() error {
			attempt++
			return job.Run(ctx)
		},
		backoff.WithContext(backoff.WithMaxRetries(b, MaxAttempts-1), ctx),
		func(err error, next time.Duration) {
			log.Warnf("worker: job %s attempt %d failed, retrying in %s: %s", job.Name, attempt, next, err)
		},
	)

	s.metricsManager.HistogramJobDuration.WithLabelValues(job.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metricsManager.CounterJobFailures.WithLabelValues(job.Name).Inc()
		return fmt.Errorf("failed after %d attempts: %w", attempt, err)
	}
	log.Debugf("worker: job %s done in %s", job.Name, time.Since(start))
	return nil
}
