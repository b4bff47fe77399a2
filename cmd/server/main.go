package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/config"
	"github.com/harunmuya/gs-app/internal/infrastructure/container"
	"github.com/harunmuya/gs-app/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	logger.Setup(cfg.Logging.Level, cfg.Server.IsDevelopment())

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}
	logrus.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	app, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logrus.WithError(err).Error("Error closing application")
		}
	}()

	if err := app.Scheduler.Start(); err != nil {
		logrus.WithError(err).Error("Failed to start scheduler")
	} else if app.Scheduler.Enabled() {
		go app.Scheduler.RunOnce()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"env":    cfg.Server.Env,
		"policy": cfg.Matching.Policy,
		"redis":  cfg.Redis.Enabled(),
	}).Info("Starting server")

	return app.Server.Run(ctx)
}
