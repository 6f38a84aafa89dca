// Package scheduler runs periodic background jobs. The only job today is the
// tip expiration sweep.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is a unit of periodic work.
type Job func(ctx context.Context) error

// Scheduler invokes a job on a fixed interval until its context is cancelled.
type Scheduler struct {
	name     string
	job      Job
	interval time.Duration
	logger   *slog.Logger
}

// New constructs a scheduler for the given job.
func New(name string, job Job, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		name:     name,
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Run executes the job immediately, then on every tick, until ctx is
// cancelled. Job failures are logged and do not stop the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "scheduler started",
		"job", s.name,
		"interval", s.interval.String(),
	)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "scheduler stopped", "job", s.name)
			return ctx.Err()
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.job(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.ErrorContext(ctx, "scheduled job failed",
			"job", s.name,
			"error", err,
		)
	}
}
