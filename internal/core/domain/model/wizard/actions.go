package wizard

import (
	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
)

// Action is an event the flow reacts to. The set of actions is closed.
type Action interface {
	Name() string
	apply(d Draft) (Draft, error)
}

// ChoosePlan picks the plan. From PlanSelection it opens Configuring with empty
// slots; from Configuring it swaps the plan and keeps the selections when the
// new plan has the same slots and quota. A different plan drops the contact
// form and the validated customer, so they are entered again for it.
type ChoosePlan struct {
	Plan plan.Plan
}

// SetSex sets a figure's sex, clearing hair and face when it changes.
type SetSex struct {
	Figure int
	Sex    selection.Sex
}

// SetAttribute chooses a single-valued part. Choosing the current item again clears it.
type SetAttribute struct {
	Figure   int
	Category selection.Category
	Item     selection.ItemID
}

// ToggleAccessory adds or removes an accessory on a figure.
type ToggleAccessory struct {
	Figure int
	Item   selection.ItemID
}

type ResetFigure struct {
	Figure int
}

type SetPet struct {
	Item selection.ItemID
}

type ClearPet struct{}

type SetBackground struct {
	Item selection.ItemID
}

type SetCustomBackground struct {
	Ref string
}

// ProceedToContact moves to ContactInfo once every figure is complete.
type ProceedToContact struct{}

// UpdateContact stores the contact form without validating it.
type UpdateContact struct {
	Form customer.Form
}

// SetRegion changes the region of the contact form and clears the comuna.
type SetRegion struct {
	Region string
}

// SubmitContact validates the form and moves to Summary.
type SubmitContact struct {
	Form customer.Form
}

// BackToConfiguring returns from ContactInfo to Configuring.
type BackToConfiguring struct{}

// BackToContact returns from Summary to ContactInfo.
type BackToContact struct{}

// ChangePlan returns to PlanSelection and discards selections and contact data.
type ChangePlan struct{}

// BeginSubmission marks a confirmation as in flight.
type BeginSubmission struct{}

// SubmissionSucceeded records the created order and confirms the draft.
type SubmissionSucceeded struct {
	OrderID int64
}

// SubmissionFailed ends the in-flight confirmation and keeps the draft at Summary.
type SubmissionFailed struct {
	Reason string
}

func (ChoosePlan) Name() string { return "choose_plan" }
func (SetSex) Name() string { return "set_sex" }
func (SetAttribute) Name() string { return "set_attribute" }
func (ToggleAccessory) Name() string { return "toggle_accessory" }
func (ResetFigure) Name() string { return "reset_figure" }
func (SetPet) Name() string { return "set_pet" }
func (ClearPet) Name() string { return "clear_pet" }
func (SetBackground) Name() string { return "set_background" }
func (SetCustomBackground) Name() string { return "set_custom_background" }
func (ProceedToContact) Name() string { return "proceed_to_contact" }
func (UpdateContact) Name() string { return "update_contact" }
func (SetRegion) Name() string { return "set_region" }
func (SubmitContact) Name() string { return "submit_contact" }
func (BackToConfiguring) Name() string { return "back_to_configuring" }
func (BackToContact) Name() string { return "back_to_contact" }
func (ChangePlan) Name() string { return "change_plan" }
func (BeginSubmission) Name() string { return "begin_submission" }
func (SubmissionSucceeded) Name() string { return "submission_succeeded" }
func (SubmissionFailed) Name() string { return "submission_failed" }
