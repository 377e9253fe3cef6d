package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rafkix/enwis-backend/internal/config"
	"github.com/rafkix/enwis-backend/internal/models"
	"go.uber.org/zap"
)

// Notifier delivers a "you have N words due" reminder. Delivery transport
// (bot, email, push) lives outside this backend.
type Notifier interface {
	SendReminder(userID int64, dueCount int) error
}

type DueReaderI interface {
	DueSummary(ctx context.Context, now time.Time) ([]models.DueSummary, error)
}

// Scheduler periodically sweeps review states and notifies users who have
// words due, inside the configured notification hours.
type Scheduler struct {
	scheduler *gocron.Scheduler
	repo      DueReaderI
	notifier  Notifier
	cfg       config.SchedulerConfig
	log       *zap.Logger
}

func New(repo DueReaderI, notifier Notifier, cfg config.SchedulerConfig, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		repo:      repo,
		notifier:  notifier,
		cfg:       cfg,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Hour
	}

	if _, err := s.scheduler.Every(interval).Do(s.sweep); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	now := time.Now().UTC()

	if hour := now.Hour(); hour < s.cfg.StartHour || hour > s.cfg.EndHour {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summaries, err := s.repo.DueSummary(ctx, now)
	if err != nil {
		s.log.Error("due sweep failed", zap.Error(err))
		return
	}

	for _, summary := range summaries {
		if summary.DueCount == 0 {
			continue
		}
		if err := s.notifier.SendReminder(summary.UserID, summary.DueCount); err != nil {
			s.log.Warn("failed to send reminder",
				zap.Int64("user_id", summary.UserID),
				zap.Error(err))
		}
	}

	s.log.Info("due sweep finished", zap.Int("users_notified", len(summaries)))
}
