package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/ports"
)

// DefaultMaxDispatchAttempts is how many times an event is tried before it is left alone.
const DefaultMaxDispatchAttempts = 5

// DispatchOrderEventsCommandHandler drains the outbox.
//
// Confirmation events are handed to the notifier once, before publishing, so
// a broker outage never holds back the customer email. Notification failures
// are logged and not retried. A publish failure counts an attempt and the
// event is retried on the next run.
type DispatchOrderEventsCommandHandler struct {
	uowFactory  OrderEventUoWFactory
	publisher   ports.EventPublisher
	notifier    ports.Notifier
	maxAttempts int
	logger      *slog.Logger
}

func NewDispatchOrderEventsCommandHandler(
	uowFactory OrderEventUoWFactory,
	publisher ports.EventPublisher,
	notifier ports.Notifier,
	maxAttempts int,
	logger *slog.Logger,
) DispatchOrderEventsCommandHandler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxDispatchAttempts
	}
	return DispatchOrderEventsCommandHandler{
		uowFactory:  uowFactory,
		publisher:   publisher,
		notifier:    notifier,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "order_event_dispatcher"),
	}
}

// Handle dispatches one batch and returns how many events were processed.
func (h *DispatchOrderEventsCommandHandler) Handle(ctx context.Context, cmd DispatchOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	repo := h.uowFactory.Create().OrderEventRepository()

	events, err := repo.GetUnprocessed(ctx, cmd.BatchSize(), h.maxAttempts)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, event := range events {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		if event.Type == string(order.EventConfirmed) && !event.Notified {
			h.notify(ctx, event)
			if err = repo.MarkNotified(ctx, event.ID); err != nil {
				return processed, err
			}
		}

		if err = h.publisher.Publish(ctx, event); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order event",
				"event_id", event.ID, "order_id", event.OrderID, "attempt", event.Attempts+1, "error", err)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				return processed, markErr
			}
			continue
		}

		if err = repo.MarkProcessed(ctx, event.ID); err != nil {
			return processed, err
		}
		processed++
	}

	return processed, nil
}

func (h *DispatchOrderEventsCommandHandler) notify(ctx context.Context, event ports.OrderEvent) {
	var msg ports.OrderEventMessage
	if err := json.Unmarshal(event.Payload, &msg); err != nil {
		h.logger.WarnContext(ctx, "skipping notification for unreadable event",
			"event_id", event.ID, "error", err)
		return
	}

	if err := h.notifier.NotifyOrderConfirmed(ctx, msg.Notification()); err != nil {
		h.logger.WarnContext(ctx, "failed to send order notification",
			"order_id", msg.OrderID, "error", err)
	}
}
