package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// SessionCleaner provides the ability to delete old completed sessions.
type SessionCleaner interface {
	DeleteCompletedBefore(cutoff time.Time) (int64, error)
}

// CleanupSessionsTask removes practice sessions that were completed
// longer ago than the configured retention period. In-progress sessions
// are never deleted.
type CleanupSessionsTask struct {
	Retention time.Duration `json:"retention"`
}

// Config returns the queue configuration for session cleanup tasks.
func (t CleanupSessionsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_practice_sessions",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupSessionsProcessor creates a processor function for CleanupSessionsTask.
func CleanupSessionsProcessor(cleaner SessionCleaner) backlite.QueueProcessor[CleanupSessionsTask] {
	return func(ctx context.Context, task CleanupSessionsTask) error {
		if cleaner == nil {
			return fmt.Errorf("session cleaner not configured")
		}

		retention := task.Retention
		if retention <= 0 {
			retention = 30 * 24 * time.Hour
		}
		cutoff := time.Now().Add(-retention)

		deleted, err := cleaner.DeleteCompletedBefore(cutoff)
		if err != nil {
			return fmt.Errorf("cleanup practice sessions: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d practice sessions completed before %s", deleted, cutoff.Format(time.RFC3339))
		return nil
	}
}

// NewCleanupSessionsQueue creates a backlite queue for session cleanup tasks.
func NewCleanupSessionsQueue(cleaner SessionCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupSessionsProcessor(cleaner))
}
