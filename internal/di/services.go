package di

import (
	"github.com/aristath/tickerpulse/internal/cache"
	"github.com/aristath/tickerpulse/internal/config"
	"github.com/aristath/tickerpulse/internal/metrics"
	"github.com/aristath/tickerpulse/internal/modules/searchcounts"
	"github.com/aristath/tickerpulse/internal/modules/tickers"
	"github.com/aristath/tickerpulse/internal/modules/trending"
	"github.com/aristath/tickerpulse/internal/store"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// InitializeServices creates the store, the cache, the search tally and the services.
// A nil clock uses the wall clock.
func InitializeServices(container *Container, cfg *config.Config, clock clockwork.Clock, log zerolog.Logger) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	container.Clock = clock

	container.Registry = metrics.NewRegistry()
	container.Metrics = metrics.New(container.Registry)

	container.Store = store.NewDocumentStore(container.DocumentsDB.Conn(), clock, container.Metrics.Store, log)

	container.TickerCache = cache.NewTickerCache(cfg.CacheTTL, clock)
	container.SearchCounter = searchcounts.NewCounter(container.Metrics.SearchCounts)

	container.TickerService = tickers.NewService(
		container.Store,
		container.TickerCache,
		container.SearchCounter,
		tickers.NewShallowAnalyzer(clock),
		container.Metrics.Cache,
		log,
	)
	container.TrendingService = trending.NewService(container.Store, cfg.RecentWindow, cfg.TrendingWindow, log)

	log.Info().
		Dur("cache_ttl", cfg.CacheTTL).
		Dur("recent_window", cfg.RecentWindow).
		Dur("trending_window", cfg.TrendingWindow).
		Msg("Services initialized")
}
