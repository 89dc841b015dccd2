// Package main is the entry point for the tickerpulse API server.
// It serves per-ticker sentiment documents through a local TTL cache,
// ranks trending tickers and tallies ticker searches.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/tickerpulse/internal/config"
	"github.com/aristath/tickerpulse/internal/di"
	"github.com/aristath/tickerpulse/internal/server"
	"github.com/aristath/tickerpulse/pkg/logger"
)

// main orchestrates startup:
// 1. Loads configuration from environment variables (.env supported)
// 2. Initializes logging
// 3. Wires all dependencies via the DI container (database, store, cache, services, jobs)
// 4. Starts the scheduler and the HTTP server
// 5. Waits for a shutdown signal and shuts down gracefully
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Msg("Starting tickerpulse")

	container, err := di.Wire(cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close documents database")
		}
	}()

	container.Scheduler.Start()

	srv := server.New(server.Config{
		Log:            log,
		Container:      container,
		Port:           cfg.Port,
		DevMode:        cfg.DevMode,
		RequestTimeout: cfg.RequestTimeout,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Stop scheduled jobs before closing the database they use
	container.Scheduler.Stop()

	// The HTTP server gets up to 10 seconds to finish in-flight requests
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
