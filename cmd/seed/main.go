// Command seed loads a JSON fixture of ticker, trending and history documents
// into the document database, for local development.
//
// Usage:
//
//	seed -file fixtures.json
//
// The fixture shape is:
//
//	{
//	  "tickers":  [{"ticker": "GME", "AHI": 9.1, "AHI_timestamp": 1772463600}],
//	  "trending": {"AHI": [{"ticker": "GME", "AHI": 9.1}]},
//	  "history":  [{"ticker": "GME", "metric": "AHI", "history": [...]}]
//	}
package main

import (
	"context"
	"flag"
	"os"

	"github.com/aristath/tickerpulse/internal/config"
	"github.com/aristath/tickerpulse/internal/di"
	"github.com/aristath/tickerpulse/internal/store"
	"github.com/aristath/tickerpulse/pkg/logger"
)

func main() {
	file := flag.String("file", "fixtures.json", "path to the JSON fixture")
	flag.Parse()

	log := logger.New(logger.Config{Level: "info", Pretty: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to open fixture")
	}
	defer f.Close()

	fixture, err := store.DecodeFixture(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Invalid fixture")
	}

	container, err := di.InitializeDatabases(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open documents database")
	}
	defer container.Close()

	documents := store.NewDocumentStore(container.DocumentsDB.Conn(), nil, nil, log)
	summary, err := documents.Load(context.Background(), fixture)
	if err != nil {
		log.Error().Err(err).Msg("Fixture load stopped early")
		container.Close()
		os.Exit(1)
	}

	log.Info().
		Str("database", container.DocumentsDB.Path()).
		Int("tickers", summary.Tickers).
		Int("trending", summary.Trending).
		Int("history", summary.History).
		Msg("Seed complete")
}
