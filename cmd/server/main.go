package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gadgeski/Docker-Assignment1/internal/app/server"
	"github.com/gadgeski/Docker-Assignment1/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := server.NewConfig()
	if err != nil {
		logging.Fatal("failed to load config", zap.Error(err))
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Fatal("invalid log level", zap.Error(err))
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServer(cfg).Run(ctx); err != nil {
		logging.Fatal("Greeting server exited: ", zap.Error(err))
	}
}
