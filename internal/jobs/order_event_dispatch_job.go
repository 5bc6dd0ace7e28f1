package jobs

import (
	"context"
	"log/slog"

	"configurator/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultDispatchSchedule = "*/5 * * * * *"
	DefaultDispatchBatch    = 50
)

type OrderEventDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchOrderEventsCommand) (int, error)
}

// OrderEventDispatchJob drains the order event outbox on a schedule.
// A run still in progress when the next tick fires makes that tick a no-op.
type OrderEventDispatchJob struct {
	handler   OrderEventDispatcher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrderEventDispatchJob(
	handler OrderEventDispatcher,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OrderEventDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultDispatchBatch
	}
	return &OrderEventDispatchJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "order_event_dispatch_job"),
	}
}

func (j *OrderEventDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order event dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running dispatch to finish.
func (j *OrderEventDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order event dispatch job stopped")
}

func (j *OrderEventDispatchJob) run(ctx context.Context) {
	cmd, err := commands.NewDispatchOrderEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid dispatch command", "error", err)
		return
	}

	processed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order event dispatch failed", "processed", processed, "error", err)
		return
	}
	if processed > 0 {
		j.logger.DebugContext(ctx, "Order events dispatched", "processed", processed)
	}
}
