package commands

import (
	"context"

	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/ports"
)

// ApplyDraftActionCommandHandler runs the wizard reducer on the stored draft.
// The read and the write are one atomic update, so an action never overwrites
// a concurrent confirmation. A refused action leaves the stored draft untouched.
type ApplyDraftActionCommandHandler struct {
	drafts ports.DraftStore
}

func NewApplyDraftActionCommandHandler(drafts ports.DraftStore) ApplyDraftActionCommandHandler {
	return ApplyDraftActionCommandHandler{drafts: drafts}
}

func (h *ApplyDraftActionCommandHandler) Handle(ctx context.Context, cmd ApplyDraftActionCommand) (wizard.Draft, error) {
	if err := cmd.Validate(); err != nil {
		return wizard.Draft{}, err
	}

	return h.drafts.Update(ctx, cmd.DraftID(), applying(cmd.Action()))
}

func applying(action wizard.Action) ports.DraftChange {
	return func(d wizard.Draft) (wizard.Draft, error) {
		return wizard.Apply(d, action)
	}
}
