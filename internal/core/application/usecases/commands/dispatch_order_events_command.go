package commands

import (
	"errors"

	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrDispatchOrderEventsCommandIsNotConstructed = errors.New(
	"DispatchOrderEventsCommand must be created via NewDispatchOrderEventsCommand constructor",
)

// DispatchOrderEventsCommand sends one batch of stored order events.
type DispatchOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchOrderEventsCommand(batchSize int) (DispatchOrderEventsCommand, error) {
	if batchSize <= 0 {
		return DispatchOrderEventsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return DispatchOrderEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderEventsCommandIsNotConstructed)
}

func (c DispatchOrderEventsCommand) BatchSize() int { return c.batchSize }
