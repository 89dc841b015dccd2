/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is the single source of truth for all service instances and is
 * passed to the server for access to services.
 */
package di

import (
	"github.com/aristath/tickerpulse/internal/cache"
	"github.com/aristath/tickerpulse/internal/database"
	"github.com/aristath/tickerpulse/internal/metrics"
	"github.com/aristath/tickerpulse/internal/modules/searchcounts"
	"github.com/aristath/tickerpulse/internal/modules/tickers"
	"github.com/aristath/tickerpulse/internal/modules/trending"
	"github.com/aristath/tickerpulse/internal/scheduler"
	"github.com/aristath/tickerpulse/internal/store"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

/**
 * Container holds all dependencies for the application.
 *
 * Architecture:
 * - Database: a single SQLite document database (tickers, trending, history)
 * - Store: msgpack document store over that database
 * - Core: process-local ticker cache and the search tally
 * - Services: ticker lookups and trending rankings
 * - Scheduler: optional maintenance jobs (cache sweep, trending prune)
 */
type Container struct {
	// Database
	DocumentsDB *database.DB

	// Instrumentation
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Clock    clockwork.Clock

	// Store
	Store *store.DocumentStore

	// Core
	TickerCache   *cache.TickerCache
	SearchCounter *searchcounts.Counter

	// Services
	TickerService   *tickers.Service
	TrendingService *trending.Service

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.DocumentsDB != nil {
		return c.DocumentsDB.Close()
	}
	return nil
}
