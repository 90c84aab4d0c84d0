package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
)

// SchedulerConfig controls the periodic auto-close sweep.
type SchedulerConfig struct {
	// Interval between sweep passes.
	Interval time.Duration
	// RunOnStart triggers one pass immediately, catching sessions left open
	// across a restart.
	RunOnStart bool
}

// SweepScheduler drives the auto-close sweep on a fixed interval. The sweep
// itself decides which sessions are eligible, so the scheduler stays dumb:
// tick, sweep, log.
type SweepScheduler struct {
	sweeper portssvc.SessionSweeper
	cfg     SchedulerConfig
	logger  *slog.Logger
}

// NewSweepScheduler creates a scheduler around the given sweeper.
func NewSweepScheduler(sweeper portssvc.SessionSweeper, cfg SchedulerConfig, logger *slog.Logger) *SweepScheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	return &SweepScheduler{
		sweeper: sweeper,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run blocks until ctx is canceled, sweeping every interval. A failed pass is
// logged and retried on the next tick.
func (s *SweepScheduler) Run(ctx context.Context) {
	ctx = middleware.WithLogger(ctx, s.logger.With(slog.String("component", "sweep_scheduler")))

	if s.cfg.RunOnStart {
		s.sweep(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweep scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SweepScheduler) sweep(ctx context.Context) {
	result, err := s.sweeper.AutoCloseSessions(ctx, "")
	if err != nil {
		s.logger.Error("Auto-close sweep failed", slog.String("error", err.Error()))
		return
	}
	if result.Closed > 0 {
		s.logger.Info("Auto-close sweep closed sessions",
			slog.Int("closed", result.Closed),
			slog.String("message", result.Message))
	} else {
		s.logger.Debug("Auto-close sweep made no changes",
			slog.String("message", result.Message))
	}
}
