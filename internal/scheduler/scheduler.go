// Package scheduler runs background maintenance jobs on cron schedules.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
	jobs []string
}

// New creates a new scheduler
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.jobs)).Msg("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// AddJob registers a new job with cron schedule.
// Schedules carry a seconds field:
//   - "0 */15 * * * *"     - Every 15 minutes
//   - "@hourly"            - Every hour
//   - "@every 30s"         - Every 30 seconds
//
// An empty schedule leaves the job disabled and is not an error.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	if schedule == "" {
		s.log.Debug().Str("job", job.Name()).Msg("Job disabled, no schedule")
		return nil
	}

	_, err := s.cron.AddFunc(schedule, func() {
		s.log.Debug().Str("job", job.Name()).Msg("Running job")

		if err := job.Run(); err != nil {
			s.log.Error().
				Err(err).
				Str("job", job.Name()).
				Msg("Job failed")
		} else {
			s.log.Debug().Str("job", job.Name()).Msg("Job completed")
		}
	})

	if err != nil {
		return err
	}

	s.jobs = append(s.jobs, job.Name())
	s.log.Info().
		Str("schedule", schedule).
		Str("job", job.Name()).
		Msg("Job registered")

	return nil
}

// Jobs returns the names of registered jobs in registration order
func (s *Scheduler) Jobs() []string {
	out := make([]string, len(s.jobs))
	copy(out, s.jobs)
	return out
}
