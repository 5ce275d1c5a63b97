package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/gamma/internal/app"
	"github.com/nfrund/gamma/internal/config"
	"github.com/nfrund/gamma/internal/logging"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
