package commands

import (
	"errors"
	"time"

	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrPurgeDispatchedEventsCommandIsNotConstructed = errors.New(
	"PurgeDispatchedEventsCommand must be created via NewPurgeDispatchedEventsCommand constructor",
)

// PurgeDispatchedEventsCommand removes dispatched events older than the retention period.
type PurgeDispatchedEventsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeDispatchedEventsCommand(retention time.Duration) (PurgeDispatchedEventsCommand, error) {
	if retention <= 0 {
		return PurgeDispatchedEventsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, time.Nanosecond, "unbounded")
	}
	return PurgeDispatchedEventsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeDispatchedEventsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDispatchedEventsCommandIsNotConstructed)
}

func (c PurgeDispatchedEventsCommand) Retention() time.Duration { return c.retention }
