package cache

import "time"

// TTL constants for cached ticker documents.
const (
	// DefaultTTL is how long a ticker document is served from memory before
	// the document store is consulted again.
	DefaultTTL = 10 * time.Minute

	// DefaultSweepSchedule is the cron spec used when the sweep is enabled without
	// an explicit schedule. Seconds field first (cron.WithSeconds).
	DefaultSweepSchedule = "0 */15 * * * *"
)
