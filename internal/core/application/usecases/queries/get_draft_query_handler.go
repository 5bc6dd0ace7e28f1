package queries

import (
	"context"

	"configurator/internal/core/domain/model/wizard"
)

type GetDraftQueryHandler struct {
	drafts DraftReader
}

func NewGetDraftQueryHandler(drafts DraftReader) GetDraftQueryHandler {
	return GetDraftQueryHandler{drafts: drafts}
}

// Handle returns *errs.ObjectNotFoundError for unknown or expired drafts.
func (h GetDraftQueryHandler) Handle(ctx context.Context, query GetDraftQuery) (wizard.Draft, error) {
	if err := query.Validate(); err != nil {
		return wizard.Draft{}, err
	}
	return h.drafts.Get(ctx, query.DraftID())
}
