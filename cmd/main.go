package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mpin_check/internal/application"
	"mpin_check/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level := new(slog.LevelVar)

	log := logx.New(os.Stdout, level)
	slog.SetDefault(log)

	if err := application.Run(ctx, log, level); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
