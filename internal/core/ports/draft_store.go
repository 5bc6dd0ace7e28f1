package ports

import (
	"context"
	"time"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/wizard"
)

// DraftChange computes the next draft from the stored one.
type DraftChange func(wizard.Draft) (wizard.Draft, error)

// DraftStore keeps in-progress drafts between requests.
type DraftStore interface {
	// Get loads a draft. Returns *errs.ObjectNotFoundError for unknown or expired drafts.
	Get(ctx context.Context, id kernel.UUID) (wizard.Draft, error)

	// Save stores the draft and refreshes its expiry.
	Save(ctx context.Context, draft wizard.Draft) error

	// Update runs change on the stored draft and saves the result only if
	// nothing else wrote the draft in between, re-running change otherwise.
	// When change fails the stored draft is returned with its error.
	Update(ctx context.Context, id kernel.UUID, change DraftChange) (wizard.Draft, error)

	// AcquireSubmission takes the per-draft submission lock for at most ttl.
	// It returns false when another submission holds it.
	AcquireSubmission(ctx context.Context, id kernel.UUID, ttl time.Duration) (bool, error)

	// ReleaseSubmission drops the lock taken by AcquireSubmission.
	ReleaseSubmission(ctx context.Context, id kernel.UUID) error
}
