package commands

import (
	"errors"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/pkg/guard"
)

var ErrConfirmDraftCommandIsNotConstructed = errors.New(
	"ConfirmDraftCommand must be created via NewConfirmDraftCommand constructor",
)

// ConfirmDraftCommand turns a draft at Summary into an order.
type ConfirmDraftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmDraftCommand(draftID kernel.UUID) (ConfirmDraftCommand, error) {
	cmd := ConfirmDraftCommand{guard: guard.NewConstructorGuard()}
	if err := draftID.Validate(); err != nil {
		return ConfirmDraftCommand{}, err
	}
	cmd.draftID = draftID
	return cmd, nil
}

func (c ConfirmDraftCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDraftCommandIsNotConstructed)
}

func (c ConfirmDraftCommand) DraftID() kernel.UUID { return c.draftID }
