package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Reporter is the periodic job run by the scheduler
type Reporter interface {
	Report(ctx context.Context) error
}

// Scheduler runs the stats report on a fixed interval
type Scheduler struct {
	scheduler *gocron.Scheduler
	reporter  Reporter
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new scheduler instance. A zero interval disables it.
func New(reporter Reporter, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporter,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the report and runs the scheduler in the background.
// The first report runs immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Stats report disabled")
		return nil
	}

	if _, err := s.scheduler.Every(s.interval).Do(s.report, ctx); err != nil {
		return err
	}
	s.scheduler.StartAsync()

	s.logger.Info("Stats report scheduled", zap.Duration("interval", s.interval))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) report(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.reporter.Report(ctx); err != nil {
		s.logger.Warn("Scheduled stats report failed", zap.Error(err))
	}
}
