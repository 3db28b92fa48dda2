package tasks

import "time"

// Config holds task queue settings.
type Config struct {
	// Workers is the number of concurrent task processors.
	Workers int

	// ReleaseAfter frees tasks claimed by a worker that died.
	ReleaseAfter time.Duration

	// CleanupInterval controls how often finished tasks are pruned.
	CleanupInterval time.Duration

	// RetentionDuration keeps finished task records around for inspection.
	RetentionDuration time.Duration
}
