package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"elimination-tracker/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Elimination tracker exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	InitLogger(cfg.LogLevel)

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := app.Shutdown(ctx); shutdownErr != nil {
			slog.Error("Application shutdown error", "error", shutdownErr)
		}
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	WaitForShutdown()
	return nil
}
