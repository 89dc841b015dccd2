package di

import (
	"fmt"

	"github.com/aristath/tickerpulse/internal/config"
	"github.com/aristath/tickerpulse/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the document database and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	documentsDB, err := database.New(database.Config{
		Path: cfg.DatabasePath(),
		Name: "documents",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize documents database: %w", err)
	}

	if err := documentsDB.Migrate(); err != nil {
		documentsDB.Close()
		return nil, fmt.Errorf("failed to migrate documents database: %w", err)
	}
	container.DocumentsDB = documentsDB

	log.Info().Str("path", documentsDB.Path()).Msg("Documents database initialized")

	return container, nil
}
