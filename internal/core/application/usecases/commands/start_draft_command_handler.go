package commands

import (
	"context"

	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/ports"
)

// StartDraftCommandHandler creates drafts at PlanSelection.
type StartDraftCommandHandler struct {
	drafts ports.DraftStore
}

func NewStartDraftCommandHandler(drafts ports.DraftStore) StartDraftCommandHandler {
	return StartDraftCommandHandler{drafts: drafts}
}

func (h *StartDraftCommandHandler) Handle(ctx context.Context, cmd StartDraftCommand) (wizard.Draft, error) {
	if err := cmd.Validate(); err != nil {
		return wizard.Draft{}, err
	}

	d, err := wizard.NewDraft(cmd.DraftID())
	if err != nil {
		return wizard.Draft{}, err
	}

	if err = h.drafts.Save(ctx, d); err != nil {
		return wizard.Draft{}, err
	}

	return d, nil
}
