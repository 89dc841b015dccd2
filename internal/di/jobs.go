package di

import (
	"fmt"

	"github.com/aristath/tickerpulse/internal/cache"
	"github.com/aristath/tickerpulse/internal/config"
	"github.com/aristath/tickerpulse/internal/scheduler"
	"github.com/aristath/tickerpulse/internal/store"
	"github.com/rs/zerolog"
)

// RegisterJobs creates the maintenance jobs and schedules those that have a schedule configured
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) error {
	container.Scheduler = scheduler.New(log)

	jobs := []struct {
		schedule string
		job      scheduler.Job
	}{
		{cfg.CacheSweepSchedule, cache.NewSweepJob(container.TickerCache, container.Metrics.Cache, log)},
		{cfg.TrendingPruneSchedule, store.NewPruneJob(container.Store, cfg.TrendingRetention, log)},
	}

	for _, j := range jobs {
		if err := container.Scheduler.AddJob(j.schedule, j.job); err != nil {
			return fmt.Errorf("failed to register %s: %w", j.job.Name(), err)
		}
	}

	return nil
}
