package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gbpsync/internal/domain"
)

// Runner defines the ingestion entry point the scheduler drives.
type Runner interface {
	RunIngestion(ctx context.Context) (*domain.RunResult, error)
}

// RunLock serializes pipeline runs against one account. The store is
// read-then-written by external id without concurrency tokens, so two
// overlapping runs could lose updates.
type RunLock struct {
	mu sync.Mutex
}

func (l *RunLock) TryAcquire() bool {
	return l.mu.TryLock()
}

func (l *RunLock) Release() {
	l.mu.Unlock()
}

type Scheduler struct {
	runner   Runner
	lock     *RunLock
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, lock *RunLock, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		lock:     lock,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runIngestion(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runIngestion(ctx)
		}
	}
}

func (s *Scheduler) runIngestion(ctx context.Context) {
	if !s.lock.TryAcquire() {
		s.logger.Warn("previous run still holds the account lock, skipping")
		return
	}
	defer s.lock.Release()

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.runner.RunIngestion(runCtx); err != nil {
		s.logger.Error("ingestion run failed", "error", err)
	}
}
