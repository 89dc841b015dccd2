package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PruneJob deletes trending documents past their retention.
// It is only scheduled when TRENDING_PRUNE_SCHEDULE is set.
type PruneJob struct {
	store     *DocumentStore
	retention time.Duration
	timeout   time.Duration
	log       zerolog.Logger
}

// NewPruneJob creates a new trending prune job
func NewPruneJob(store *DocumentStore, retention time.Duration, log zerolog.Logger) *PruneJob {
	return &PruneJob{
		store:     store,
		retention: retention,
		timeout:   time.Minute,
		log:       log.With().Str("job", "trending_prune").Logger(),
	}
}

// Run executes the prune
func (j *PruneJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.store.PruneTrending(ctx, j.retention)
	if err != nil {
		return err
	}

	if n > 0 {
		j.log.Info().
			Int64("deleted", n).
			Dur("retention", j.retention).
			Msg("Pruned trending documents")
	}
	return nil
}

// Name returns the job name for scheduling and logging.
func (j *PruneJob) Name() string {
	return "trending_prune"
}
