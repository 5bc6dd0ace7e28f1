package wizard

import (
	"fmt"

	"configurator/internal/pkg/errs"
)

var (
	// ErrDraftIsNotConstructed is returned for drafts not built through NewDraft or RestoreDraft.
	ErrDraftIsNotConstructed = errs.NewValueIsRequiredError("Draft must be created via NewDraft constructor")

	// ErrSubmissionInProgress is returned while a confirmation is in flight.
	ErrSubmissionInProgress = errs.NewConflictError("a submission is already in progress for this draft")

	// ErrNoSubmissionInProgress is returned when a submission outcome arrives with none in flight.
	ErrNoSubmissionInProgress = errs.NewConflictError("no submission is in progress for this draft")
)

// IncompleteOrderError refuses leaving Configuring before every figure is complete.
type IncompleteOrderError struct {
	Completed int
	Required  int
}

func (e *IncompleteOrderError) Error() string {
	return fmt.Sprintf("%d/%d figures complete", e.Completed, e.Required)
}

func (e *IncompleteOrderError) Unwrap() error {
	return errs.ErrConflict
}

// StepError refuses an action the current step does not accept.
type StepError struct {
	Action string
	Step   Step
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s is not allowed at step %s", e.Action, e.Step)
}

func (e *StepError) Unwrap() error {
	return errs.ErrConflict
}
