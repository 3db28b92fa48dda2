// Package scheduler runs periodic housekeeping jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/abecedary/abecedary/internal/tasks"
)

// HousekeepingScheduler enqueues the session cleanup task on a cron
// schedule. The actual deletion runs on the task queue so a slow sweep
// never blocks the scheduler.
type HousekeepingScheduler struct {
	taskClient *tasks.Client
	schedule   string
	retention  time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewHousekeepingScheduler creates a new scheduler instance.
func NewHousekeepingScheduler(taskClient *tasks.Client, schedule string, retention time.Duration) *HousekeepingScheduler {
	return &HousekeepingScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		retention:  retention,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *HousekeepingScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.enqueueCleanup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule housekeeping job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Housekeeping scheduler: started with schedule '%s' (retention %s)", s.schedule, s.retention)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *HousekeepingScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Housekeeping scheduler: stopped")
}

// RunNow enqueues an immediate cleanup sweep.
func (s *HousekeepingScheduler) RunNow() {
	s.enqueueCleanup()
}

// IsRunning returns whether the scheduler is active.
func (s *HousekeepingScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next sweep will be enqueued.
func (s *HousekeepingScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *HousekeepingScheduler) enqueueCleanup() {
	if s.taskClient == nil {
		log.Printf("Housekeeping: skipped (task queue disabled)")
		return
	}
	_, err := s.taskClient.Add(tasks.CleanupSessionsTask{Retention: s.retention}).Save()
	if err != nil {
		log.Printf("Housekeeping: failed to enqueue cleanup task: %v", err)
		return
	}
	log.Printf("Housekeeping: enqueued session cleanup (retention %s)", s.retention)
}
