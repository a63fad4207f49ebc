// Package reminder runs the periodic due-card digest.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"ai_linguo/internal/middleware"

	"github.com/go-co-op/gocron"
)

const (
	DefaultInterval = 24 * time.Hour
	runTimeout      = 10 * time.Minute
)

// Notifier sends one round of reminders and reports how many went out.
type Notifier interface {
	SendDueReminders(ctx context.Context) (int, error)
}

// Scheduler triggers the notifier on a fixed interval.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	interval  time.Duration
	logger    *slog.Logger
}

func New(notifier Notifier, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
		interval:  interval,
		logger:    logger.With("component", "reminder"),
	}
}

// Start schedules the digest and returns without blocking. The first run
// happens one interval after start.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Reminder scheduler stopped")
}

// RunOnce sends one round of reminders immediately.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	ctx = middleware.WithLogger(ctx, s.logger)
	return s.notifier.SendDueReminders(ctx)
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	started := time.Now()
	sent, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("Reminder run failed", "error", err, "sent", sent)
		return
	}
	s.logger.Info("Reminder run finished", "sent", sent, "duration", time.Since(started).String())
}
