package queries

import (
	"context"
	"errors"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// DraftReader loads drafts kept between requests.
type DraftReader interface {
	Get(ctx context.Context, id kernel.UUID) (wizard.Draft, error)
}

type GetDraftQuery struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDraftQuery(draftID kernel.UUID) (GetDraftQuery, error) {
	if err := draftID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}
	return GetDraftQuery{draftID: draftID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

func (q GetDraftQuery) DraftID() kernel.UUID { return q.draftID }
