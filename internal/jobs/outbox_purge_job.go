package jobs

import (
	"context"
	"log/slog"
	"time"

	"configurator/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultPurgeSchedule  = "0 0 3 * * *"
	DefaultEventRetention = 7 * 24 * time.Hour
)

type DispatchedEventPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeDispatchedEventsCommand) (int64, error)
}

// OutboxPurgeJob deletes dispatched order events once they are older than
// the retention period.
type OutboxPurgeJob struct {
	handler   DispatchedEventPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxPurgeJob(
	handler DispatchedEventPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *OutboxPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	if retention <= 0 {
		retention = DefaultEventRetention
	}
	return &OutboxPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_purge_job"),
	}
}

func (j *OutboxPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox purge job started", "schedule", j.schedule, "retention", j.retention.String())
	return nil
}

func (j *OutboxPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox purge job stopped")
}

func (j *OutboxPurgeJob) run(ctx context.Context) {
	cmd, err := commands.NewPurgeDispatchedEventsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid purge command", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox purge failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Dispatched order events purged", "deleted", deleted)
}
