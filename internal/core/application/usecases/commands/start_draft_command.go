package commands

import (
	"errors"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/pkg/guard"
)

var ErrStartDraftCommandIsNotConstructed = errors.New(
	"StartDraftCommand must be created via NewStartDraftCommand constructor",
)

// StartDraftCommand opens a new wizard flow.
type StartDraftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartDraftCommand(draftID kernel.UUID) (StartDraftCommand, error) {
	cmd := StartDraftCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setDraftID(draftID); err != nil {
		return StartDraftCommand{}, err
	}
	return cmd, nil
}

func (c StartDraftCommand) Validate() error {
	return c.guard.Validate(ErrStartDraftCommandIsNotConstructed)
}

func (c StartDraftCommand) DraftID() kernel.UUID { return c.draftID }

func (c *StartDraftCommand) setDraftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.draftID = id
	return nil
}
