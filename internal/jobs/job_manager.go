package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the schedules of the background jobs. Empty values fall back
// to the package defaults.
type Config struct {
	DispatchSchedule string
	DispatchBatch    int
	PurgeSchedule    string
	EventRetention   time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchJob *OrderEventDispatchJob
	purgeJob    *OutboxPurgeJob
}

func NewJobManager(
	dispatchHandler OrderEventDispatcher,
	purgeHandler DispatchedEventPurger,
	cfg Config,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob: NewOrderEventDispatchJob(dispatchHandler, cfg.DispatchSchedule, cfg.DispatchBatch, logger),
		purgeJob:    NewOutboxPurgeJob(purgeHandler, cfg.PurgeSchedule, cfg.EventRetention, logger),
	}
}

// StartAll starts every job. When one fails to start the jobs already
// started are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order event dispatch job: %w", err)
	}

	if err := jm.purgeJob.Start(); err != nil {
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
	jm.purgeJob.Stop()
}
