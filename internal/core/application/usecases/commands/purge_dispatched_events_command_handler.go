package commands

import (
	"context"
	"time"
)

type PurgeDispatchedEventsCommandHandler struct {
	uowFactory OrderEventUoWFactory
	now        func() time.Time
}

func NewPurgeDispatchedEventsCommandHandler(uowFactory OrderEventUoWFactory) PurgeDispatchedEventsCommandHandler {
	return PurgeDispatchedEventsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the number of events removed.
func (h *PurgeDispatchedEventsCommandHandler) Handle(ctx context.Context, cmd PurgeDispatchedEventsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	before := h.now().UTC().Add(-cmd.Retention())
	return h.uowFactory.Create().OrderEventRepository().DeleteProcessedBefore(ctx, before)
}
