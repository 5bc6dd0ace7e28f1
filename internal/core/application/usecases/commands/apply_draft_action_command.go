package commands

import (
	"errors"
	"fmt"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrApplyDraftActionCommandIsNotConstructed = errors.New(
	"ApplyDraftActionCommand must be created via NewApplyDraftActionCommand constructor",
)

// ApplyDraftActionCommand is one customer interaction with a draft.
// Submission actions are reserved to ConfirmDraftCommand.
type ApplyDraftActionCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID
	action  wizard.Action

	guard guard.ConstructorGuard
}

func NewApplyDraftActionCommand(draftID kernel.UUID, action wizard.Action) (ApplyDraftActionCommand, error) {
	cmd := ApplyDraftActionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setAction(action),
	); err != nil {
		return ApplyDraftActionCommand{}, err
	}

	return cmd, nil
}

func (c ApplyDraftActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyDraftActionCommandIsNotConstructed)
}

func (c ApplyDraftActionCommand) DraftID() kernel.UUID { return c.draftID }

func (c ApplyDraftActionCommand) Action() wizard.Action { return c.action }

func (c *ApplyDraftActionCommand) setDraftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.draftID = id
	return nil
}

func (c *ApplyDraftActionCommand) setAction(action wizard.Action) error {
	switch action.(type) {
	case nil:
		return errs.NewValueIsRequiredError("action")
	case wizard.BeginSubmission, wizard.SubmissionSucceeded, wizard.SubmissionFailed:
		return errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%s is only issued by confirmation", action.Name()),
		)
	}
	c.action = action
	return nil
}
