package wizard

import (
	"errors"
	"fmt"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/services"
	"configurator/internal/pkg/errs"
)

// Draft is the state of one customer's flow. It is a value: copies are
// independent, which is what lets Apply stay pure.
type Draft struct {
	id   kernel.UUID
	step Step

	plan    plan.Plan
	hasPlan bool
	store   selection.Store

	// contact is the form as last typed; customer is set once it validated.
	contact  customer.Form
	customer customer.Info

	submitting bool
	lastError  string
	orderID    int64

	isConstructed bool
}

// Params is the storable form of a Draft.
type Params struct {
	ID         kernel.UUID
	Step       Step
	Plan       *plan.Params
	Figures    []selection.FigureParams
	PetID      selection.ItemID
	Background selection.ItemID
	CustomBg   string
	Contact    customer.Form
	HasInfo    bool
	Submitting bool
	LastError  string
	OrderID    int64
}

// NewDraft starts a flow at PlanSelection.
func NewDraft(id kernel.UUID) (Draft, error) {
	if err := id.Validate(); err != nil {
		return Draft{}, err
	}
	return Draft{id: id, step: PlanSelection, isConstructed: true}, nil
}

// RestoreDraft rebuilds a stored draft and checks that its step agrees with
// what it holds.
func RestoreDraft(p Params) (Draft, error) {
	if err := errors.Join(p.ID.Validate(), p.Step.Validate()); err != nil {
		return Draft{}, err
	}

	d := Draft{
		id:            p.ID,
		step:          p.Step,
		contact:       p.Contact,
		submitting:    p.Submitting,
		lastError:     p.LastError,
		orderID:       p.OrderID,
		isConstructed: true,
	}

	if p.Plan != nil {
		pl, err := plan.NewPlan(*p.Plan)
		if err != nil {
			return Draft{}, err
		}
		figures := make([]selection.Figure, 0, len(p.Figures))
		for _, fp := range p.Figures {
			f, err := selection.RestoreFigure(fp)
			if err != nil {
				return Draft{}, err
			}
			figures = append(figures, f)
		}
		addOns, err := selection.RestoreAddOns(p.PetID, p.Background, p.CustomBg)
		if err != nil {
			return Draft{}, err
		}
		store, err := selection.RestoreStore(figures, addOns)
		if err != nil {
			return Draft{}, err
		}
		if store.Size() != pl.MaxFigures() {
			return Draft{}, errs.NewValueIsInvalidErrorWithCause(
				"figures",
				fmt.Errorf("plan %s has %d slots, draft has %d", pl.ID(), pl.MaxFigures(), store.Size()),
			)
		}
		d.plan, d.hasPlan, d.store = pl, true, store
	}

	if p.HasInfo {
		info, err := customer.NewInfo(p.Contact)
		if err != nil {
			return Draft{}, err
		}
		d.customer = info
	}

	if err := d.checkConsistency(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Validate ensures the draft was properly constructed.
func (d Draft) Validate() error {
	if !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

func (d Draft) ID() kernel.UUID { return d.id }

func (d Draft) Step() Step { return d.step }

// Plan returns the chosen plan and whether one was chosen.
func (d Draft) Plan() (plan.Plan, bool) { return d.plan, d.hasPlan }

func (d Draft) Store() selection.Store { return d.store }

// Contact returns the contact form as last entered.
func (d Draft) Contact() customer.Form { return d.contact }

// Customer returns the validated contact snapshot, once ContactInfo was passed.
func (d Draft) Customer() (customer.Info, bool) { return d.customer, !d.customer.IsZero() }

// IsSubmitting reports whether a confirmation is in flight.
func (d Draft) IsSubmitting() bool { return d.submitting }

// LastError is the reason the last confirmation failed, if it did.
func (d Draft) LastError() string { return d.lastError }

// OrderID is the id of the order the draft produced, once Confirmed.
func (d Draft) OrderID() int64 { return d.orderID }

// Completion evaluates the current selections. The zero evaluator is returned
// before a plan is chosen.
func (d Draft) Completion() services.CompletionEvaluator {
	return services.NewCompletionEvaluator(d.plan, d.store)
}

// Pricing prices the current selections.
func (d Draft) Pricing() services.PriceCalculator {
	return services.NewPriceCalculator(d.plan, d.store)
}

// Params returns the storable form of the draft.
func (d Draft) Params() Params {
	p := Params{
		ID:         d.id,
		Step:       d.step,
		Contact:    d.contact,
		HasInfo:    !d.customer.IsZero(),
		Submitting: d.submitting,
		LastError:  d.lastError,
		OrderID:    d.orderID,
	}
	if d.hasPlan {
		pp := d.plan.Params()
		p.Plan = &pp
		for _, f := range d.store.Figures() {
			p.Figures = append(p.Figures, f.Params())
		}
		addOns := d.store.AddOns()
		p.PetID = addOns.PetID()
		p.Background = addOns.BackgroundID()
		p.CustomBg = addOns.CustomBackground()
	}
	return p
}

func (d Draft) checkConsistency() error {
	switch {
	case d.step.HasPlan() && !d.hasPlan:
		return errs.NewValueIsRequiredErrorWithCause("plan", fmt.Errorf("step %s needs a plan", d.step))
	case d.step >= Summary && d.customer.IsZero():
		return errs.NewValueIsRequiredErrorWithCause("customerInfo", fmt.Errorf("step %s needs contact data", d.step))
	case d.submitting && d.step != Summary:
		return errs.NewValueIsInvalidErrorWithCause("submitting", fmt.Errorf("step %s cannot be submitting", d.step))
	case d.step == Confirmed && d.orderID <= 0:
		return errs.NewValueIsRequiredErrorWithCause("orderId", errors.New("a confirmed draft needs an order id"))
	}
	return nil
}
