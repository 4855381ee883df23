package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/gratefultolord/study_request_bot/internal/app"
	"github.com/gratefultolord/study_request_bot/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Error creating app: %v", err)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		logrus.Errorf("Bot stopped with error: %v", err)
		return
	}

	logrus.Info("Bot stopped")
}
