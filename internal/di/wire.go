// Package di provides dependency injection wiring and initialization.
package di

import (
	"fmt"

	"github.com/aristath/tickerpulse/internal/config"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container.
// Order of operations:
// 1. Initialize the database
// 2. Initialize store, cache and services
// 3. Register jobs
//
// clock is optional (nil means the wall clock). The scheduler is not started.
func Wire(cfg *config.Config, clock clockwork.Clock, log zerolog.Logger) (*Container, error) {
	container, err := InitializeDatabases(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize databases: %w", err)
	}

	InitializeServices(container, cfg, clock, log)

	if err := RegisterJobs(container, cfg, log); err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to register jobs: %w", err)
	}

	log.Info().Msg("Dependency injection wiring completed successfully")

	return container, nil
}
