package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/b2bsite/internal/app"
	"github.com/nfrund/b2bsite/internal/config"
	"github.com/nfrund/b2bsite/internal/logging"
	"github.com/nfrund/b2bsite/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	ctx, stop := server.WithShutdownSignals(context.Background())
	defer stop()

	site := app.New(cfg)
	runErr := site.Run(ctx)
	if runErr != nil {
		slog.Error("Server failed", "error", runErr)
	}
	if err := site.Shutdown(); err != nil {
		slog.Error("Shutdown incomplete", "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
