package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/domain/services"
	"configurator/internal/core/ports"
)

// DefaultSubmissionLockTTL bounds how long a crashed confirmation blocks its draft.
const DefaultSubmissionLockTTL = 30 * time.Second

const interruptedSubmission = "previous submission was interrupted"

// SubmissionError wraps a failed hand-off to storage. The draft stays at
// Summary with the reason recorded and the confirmation may be retried.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

// ConfirmDraftResult is the draft after confirmation and the order it produced.
type ConfirmDraftResult struct {
	Draft wizard.Draft
	Order *order.Order
}

// ConfirmDraftCommandHandler submits drafts.
//
// Workflow:
//   - take the per-draft submission lock, or fail with wizard.ErrSubmissionInProgress
//   - mark the stored draft as submitting in one atomic update
//   - store the order, or find the one a previous attempt already stored
//   - record success or failure on the draft and release the lock
type ConfirmDraftCommandHandler struct {
	drafts     ports.DraftStore
	uowFactory OrderUoWFactory
	assembler  services.OrderAssembler
	lockTTL    time.Duration
	logger     *slog.Logger
}

func NewConfirmDraftCommandHandler(
	drafts ports.DraftStore,
	uowFactory OrderUoWFactory,
	lockTTL time.Duration,
	logger *slog.Logger,
) ConfirmDraftCommandHandler {
	if lockTTL <= 0 {
		lockTTL = DefaultSubmissionLockTTL
	}
	return ConfirmDraftCommandHandler{
		drafts:     drafts,
		uowFactory: uowFactory,
		assembler:  services.NewOrderAssembler(),
		lockTTL:    lockTTL,
		logger:     logger.With("component", "confirm_draft_handler"),
	}
}

// Handle confirms the draft. Confirming an already confirmed draft returns
// it with its order. On a storage failure the returned draft carries the
// error and the error is a *SubmissionError.
func (h *ConfirmDraftCommandHandler) Handle(ctx context.Context, cmd ConfirmDraftCommand) (ConfirmDraftResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmDraftResult{}, err
	}

	acquired, err := h.drafts.AcquireSubmission(ctx, cmd.DraftID(), h.lockTTL)
	if err != nil {
		return ConfirmDraftResult{}, err
	}
	if !acquired {
		return ConfirmDraftResult{}, wizard.ErrSubmissionInProgress
	}
	defer func() {
		if releaseErr := h.drafts.ReleaseSubmission(context.WithoutCancel(ctx), cmd.DraftID()); releaseErr != nil {
			h.logger.WarnContext(ctx, "failed to release submission lock",
				"draft_id", cmd.DraftID().String(), "error", releaseErr)
		}
	}()

	d, err := h.drafts.Get(ctx, cmd.DraftID())
	if err != nil {
		return ConfirmDraftResult{}, err
	}

	if d.Step() == wizard.Confirmed {
		return h.confirmedResult(ctx, d)
	}

	d, err = h.drafts.Update(ctx, cmd.DraftID(), beginSubmission)
	if err != nil {
		return ConfirmDraftResult{Draft: d}, err
	}

	o, submitErr := h.submit(ctx, d)
	if submitErr != nil {
		h.logger.WarnContext(ctx, "order submission failed",
			"draft_id", d.ID().String(), "error", submitErr)

		failed, err := h.drafts.Update(ctx, cmd.DraftID(), applying(wizard.SubmissionFailed{Reason: submitErr.Error()}))
		if err != nil {
			return ConfirmDraftResult{Draft: failed}, errors.Join(&SubmissionError{Cause: submitErr}, err)
		}
		return ConfirmDraftResult{Draft: failed}, &SubmissionError{Cause: submitErr}
	}

	d, err = h.drafts.Update(ctx, cmd.DraftID(), applying(wizard.SubmissionSucceeded{OrderID: o.ID()}))
	if err != nil {
		return ConfirmDraftResult{Draft: d, Order: o}, err
	}

	h.logger.InfoContext(ctx, "order confirmed",
		"draft_id", d.ID().String(), "order_id", o.ID(), "total_price", o.TotalPrice())

	return ConfirmDraftResult{Draft: d, Order: o}, nil
}

// beginSubmission marks the draft as submitting. Holding the lock means no
// submission is running, so a flag already set is left over from a crash.
func beginSubmission(d wizard.Draft) (wizard.Draft, error) {
	if d.IsSubmitting() {
		recovered, err := wizard.Apply(d, wizard.SubmissionFailed{Reason: interruptedSubmission})
		if err != nil {
			return d, err
		}
		d = recovered
	}
	return wizard.Apply(d, wizard.BeginSubmission{})
}

func (h *ConfirmDraftCommandHandler) submit(ctx context.Context, d wizard.Draft) (*order.Order, error) {
	p, _ := d.Plan()
	info, _ := d.Customer()

	o, err := h.assembler.Assemble(d.ID(), p, d.Store(), info, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return persistOrder(ctx, h.uowFactory, o)
}

func (h *ConfirmDraftCommandHandler) confirmedResult(ctx context.Context, d wizard.Draft) (ConfirmDraftResult, error) {
	uow := h.uowFactory.Create()
	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return ConfirmDraftResult{Draft: d}, err
	}
	return ConfirmDraftResult{Draft: d, Order: o}, nil
}
