package wizard

import (
	"strings"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"
)

// Apply returns the draft that results from action. On error the returned
// draft is d, unchanged.
//
// Example:
//
//	d, _ := wizard.NewDraft(kernel.NewUUID())
//	d, err := wizard.Apply(d, wizard.ChoosePlan{Plan: duo})
//	d, err = wizard.Apply(d, wizard.SetSex{Figure: 1, Sex: selection.Female})
//	d, err = wizard.Apply(d, wizard.ProceedToContact{})
//	var incomplete *wizard.IncompleteOrderError
//	if errors.As(err, &incomplete) {
//	    fmt.Println(incomplete) // "0/2 figures complete"
//	}
func Apply(d Draft, action Action) (Draft, error) {
	if err := d.Validate(); err != nil {
		return d, err
	}
	if action == nil {
		return d, errs.NewValueIsRequiredError("action")
	}
	next, err := action.apply(d)
	if err != nil {
		return d, err
	}
	return next, nil
}

func (d Draft) require(action Action, steps ...Step) error {
	for _, s := range steps {
		if d.step == s {
			return nil
		}
	}
	return &StepError{Action: action.Name(), Step: d.step}
}

// editSelection runs a store mutation on a copy of the draft while Configuring.
func (d Draft) editSelection(action Action, edit func(s *selection.Store) error) (Draft, error) {
	if err := d.require(action, Configuring); err != nil {
		return d, err
	}
	if err := edit(&d.store); err != nil {
		return d, err
	}
	return d, nil
}

func (a ChoosePlan) apply(d Draft) (Draft, error) {
	if err := d.require(a, PlanSelection, Configuring); err != nil {
		return d, err
	}
	if err := a.Plan.Validate(); err != nil {
		return d, err
	}

	if !d.hasPlan || !d.plan.IsSlotCompatible(a.Plan) {
		store, err := selection.NewStore(a.Plan.MaxFigures())
		if err != nil {
			return d, err
		}
		d.store = store
	}
	if d.hasPlan && d.plan.Params() != a.Plan.Params() {
		d.contact, d.customer = customer.Form{}, customer.Info{}
	}
	d.plan, d.hasPlan = a.Plan, true
	d.step = Configuring
	return d, nil
}

func (a SetSex) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.SetSex(a.Figure, a.Sex) })
}

func (a SetAttribute) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.SetAttribute(a.Figure, a.Category, a.Item) })
}

func (a ToggleAccessory) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.ToggleAccessory(a.Figure, a.Item) })
}

func (a ResetFigure) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.ResetFigure(a.Figure) })
}

func (a SetPet) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.SetPet(a.Item) })
}

func (a ClearPet) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.ClearPet() })
}

func (a SetBackground) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.SetBackground(a.Item) })
}

func (a SetCustomBackground) apply(d Draft) (Draft, error) {
	return d.editSelection(a, func(s *selection.Store) error { return s.SetCustomBackground(a.Ref) })
}

func (a ProceedToContact) apply(d Draft) (Draft, error) {
	if err := d.require(a, Configuring); err != nil {
		return d, err
	}
	eval := d.Completion()
	if !eval.IsOrderSubmittable() {
		return d, &IncompleteOrderError{Completed: eval.CompletedFigureCount(), Required: eval.RequiredFigureCount()}
	}
	d.step = ContactInfo
	return d, nil
}

// Editing the form invalidates the snapshot taken by the last SubmitContact.
func (a UpdateContact) apply(d Draft) (Draft, error) {
	if err := d.require(a, ContactInfo); err != nil {
		return d, err
	}
	d.contact = a.Form
	d.customer = customer.Info{}
	return d, nil
}

func (a SetRegion) apply(d Draft) (Draft, error) {
	if err := d.require(a, ContactInfo); err != nil {
		return d, err
	}
	d.contact = d.contact.WithRegion(a.Region)
	d.customer = customer.Info{}
	return d, nil
}

func (a SubmitContact) apply(d Draft) (Draft, error) {
	if err := d.require(a, ContactInfo); err != nil {
		return d, err
	}
	info, err := customer.NewInfo(a.Form)
	if err != nil {
		return d, err
	}
	d.contact = a.Form
	d.customer = info
	d.step = Summary
	return d, nil
}

func (a BackToConfiguring) apply(d Draft) (Draft, error) {
	if err := d.require(a, ContactInfo); err != nil {
		return d, err
	}
	d.step = Configuring
	return d, nil
}

func (a BackToContact) apply(d Draft) (Draft, error) {
	if d.submitting {
		return d, ErrSubmissionInProgress
	}
	if err := d.require(a, Summary); err != nil {
		return d, err
	}
	d.step = ContactInfo
	return d, nil
}

func (a ChangePlan) apply(d Draft) (Draft, error) {
	if d.submitting {
		return d, ErrSubmissionInProgress
	}
	if d.step == Confirmed {
		return d, &StepError{Action: a.Name(), Step: d.step}
	}
	return Draft{id: d.id, step: PlanSelection, isConstructed: true}, nil
}

func (a BeginSubmission) apply(d Draft) (Draft, error) {
	if d.submitting {
		return d, ErrSubmissionInProgress
	}
	if err := d.require(a, Summary); err != nil {
		return d, err
	}
	d.submitting = true
	d.lastError = ""
	return d, nil
}

func (a SubmissionSucceeded) apply(d Draft) (Draft, error) {
	if !d.submitting {
		return d, ErrNoSubmissionInProgress
	}
	if a.OrderID <= 0 {
		return d, errs.NewValueIsOutOfRangeError("orderId", a.OrderID, 1, "unbounded")
	}
	d.submitting = false
	d.orderID = a.OrderID
	d.step = Confirmed
	return d, nil
}

func (a SubmissionFailed) apply(d Draft) (Draft, error) {
	if !d.submitting {
		return d, ErrNoSubmissionInProgress
	}
	reason := strings.TrimSpace(a.Reason)
	if reason == "" {
		reason = "submission failed"
	}
	d.submitting = false
	d.lastError = reason
	return d, nil
}
