// Package scheduler runs the database load job on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-fan-service/internal/logging"
	"football-fan-service/internal/metrics"
)

const defaultInterval = 24 * time.Hour

// Job is the unit of work the scheduler drives.
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler runs the load job on an interval. Runs are sequential; a run
// that outlasts the interval simply delays the next one.
type Scheduler struct {
	job        Job
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	warmOnBoot bool

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the scheduler loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the scheduler has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler with sane defaults.
func New(job Job, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, warmOnBoot bool) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		job:        job,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		warmOnBoot: warmOnBoot,
		done:       make(chan struct{}),
	}
}

// Start begins the loop until the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)

	go func() {
		logging.Info(s.logger, "scheduler started",
			logging.FieldDurationMS, s.interval.Milliseconds())
		if s.warmOnBoot {
			s.runOnce(ctx)
		}

		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				logging.Info(s.logger, "scheduler stopped")
				return
			case <-s.done:
				s.stopTicker()
				logging.Info(s.logger, "scheduler stopped")
				return
			case <-s.ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	s.recordAttempt(start)

	err := s.job.Run(ctx)
	if s.metrics != nil {
		s.metrics.RecordLoadCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(s.logger, "scheduled load failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		s.recordFailure(err, start)
		return
	}

	s.recordSuccess(start)
	logging.Info(s.logger, "scheduled load finished",
		logging.FieldDurationMS, time.Since(start).Milliseconds())
}

func (s *Scheduler) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
