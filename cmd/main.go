package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rafkix/enwis-backend/internal/config"
	"github.com/rafkix/enwis-backend/internal/repository"
	"github.com/rafkix/enwis-backend/internal/scheduler"
	"github.com/rafkix/enwis-backend/internal/service"
	"github.com/rafkix/enwis-backend/internal/storage/cache"
	"github.com/rafkix/enwis-backend/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// logNotifier stands in for the external delivery surface (bot, push).
type logNotifier struct {
	log *zap.Logger
}

func (n *logNotifier) SendReminder(userID int64, dueCount int) error {
	n.log.Info("review reminder due",
		zap.Int64("user_id", userID),
		zap.Int("due_count", dueCount))
	return nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	examCache := cache.NewCache()
	// the transport layer mounts on top of this
	_ = service.InitServices(repos, examCache, logger)

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(repos.ReviewsR, &logNotifier{log: logger}, cfg.Scheduler, logger)
		if err := sched.Start(); err != nil {
			logger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
}
