package order

import (
	"errors"
	"slices"
	"time"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a confirmed configuration. It is the aggregate root for everything
// stored about a purchase.
//
// Order follows these invariants:
//   - Has a valid submission key, shared with the draft it came from
//   - Carries between one and plan.MaxFigures() complete figures with distinct numbers
//   - Total price and extra accessory count are non-negative
//   - Holds a validated customer snapshot
//   - Only the status changes after creation
type Order struct {
	// id is assigned by storage; zero until the order is persisted
	id int64

	// submissionKey is the id of the draft that produced the order
	submissionKey kernel.UUID

	status Status

	plan    plan.Plan
	figures []FigureSnapshot

	totalPrice            int64
	extraAccessoriesCount int

	addOns   selection.AddOns
	customer customer.Info

	createdAt time.Time

	events []Event

	isConstructed bool
}

// Params groups everything an order is created from.
type Params struct {
	SubmissionKey         kernel.UUID
	Plan                  plan.Plan
	Figures               []FigureSnapshot
	TotalPrice            int64
	ExtraAccessoriesCount int
	AddOns                selection.AddOns
	Customer              customer.Info
	CreatedAt             time.Time
}

// NewOrder creates a pending order and raises EventConfirmed.
//
// Example:
//
//	o, err := order.NewOrder(order.Params{
//	    SubmissionKey: draft.ID(),
//	    Plan:          p,
//	    Figures:       snapshots,
//	    TotalPrice:    pricing.TotalPrice(),
//	    Customer:      info,
//	    CreatedAt:     time.Now(),
//	})
func NewOrder(p Params) (*Order, error) {
	o, err := build(Pending, p)
	if err != nil {
		return nil, err
	}
	o.raise(Event{Type: EventConfirmed, To: Pending, OccurredAt: p.CreatedAt})
	return o, nil
}

// RestoreOrder rebuilds a persisted order. No events are raised.
func RestoreOrder(id int64, status Status, p Params) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	o, err := build(status, p)
	if err != nil {
		return nil, err
	}
	if err := o.AssignID(id); err != nil {
		return nil, err
	}
	return o, nil
}

func build(status Status, p Params) (*Order, error) {
	o := &Order{
		status:        status,
		addOns:        p.AddOns,
		createdAt:     p.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setSubmissionKey(p.SubmissionKey),
		o.setPlanAndFigures(p.Plan, p.Figures),
		o.setPricing(p.TotalPrice, p.ExtraAccessoriesCount),
		o.setCustomer(p.Customer),
		o.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier given by storage. It may be set only once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "unbounded")
	}
	if o.id != 0 && o.id != id {
		return errs.NewConflictError("order id is already assigned")
	}
	o.id = id
	return nil
}

func (o *Order) ID() int64 { return o.id }

func (o *Order) SubmissionKey() kernel.UUID { return o.submissionKey }

func (o *Order) Status() Status { return o.status }

func (o *Order) Plan() plan.Plan { return o.plan }

// Figures returns the figure snapshots ordered by figure number.
func (o *Order) Figures() []FigureSnapshot { return slices.Clone(o.figures) }

func (o *Order) TotalPrice() int64 { return o.totalPrice }

func (o *Order) ExtraAccessoriesCount() int { return o.extraAccessoriesCount }

func (o *Order) AddOns() selection.AddOns { return o.addOns }

func (o *Order) Customer() customer.Info { return o.customer }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// FigureCount is the number of figures in the order.
func (o *Order) FigureCount() int { return len(o.figures) }

// ChangeStatus moves the order to target.
//
// Requesting the current status is a no-op: it returns false and no error,
// terminal states included. A real change raises EventStatusChanged.
func (o *Order) ChangeStatus(target Status, at time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}
	if next == o.status {
		return false, nil
	}

	o.raise(Event{Type: EventStatusChanged, From: o.status, To: next, OccurredAt: at})
	o.status = next
	return true, nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event { return slices.Clone(o.events) }

// ClearDomainEvents drops raised events once they were stored.
func (o *Order) ClearDomainEvents() { o.events = nil }

func (o *Order) raise(e Event) {
	o.events = append(o.events, e)
}

func (o *Order) setSubmissionKey(key kernel.UUID) error {
	if err := key.Validate(); err != nil {
		return err
	}
	o.submissionKey = key
	return nil
}

func (o *Order) setPlanAndFigures(p plan.Plan, figures []FigureSnapshot) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := validateFigures(figures, p.MaxFigures()); err != nil {
		return err
	}
	o.plan = p
	o.figures = slices.Clone(figures)
	slices.SortFunc(o.figures, func(a, b FigureSnapshot) int { return a.number - b.number })
	return nil
}

func (o *Order) setPricing(total int64, extra int) error {
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("totalPrice", total, 0, "unbounded")
	}
	if extra < 0 {
		return errs.NewValueIsOutOfRangeError("extraAccessoriesCount", extra, 0, "unbounded")
	}
	o.totalPrice = total
	o.extraAccessoriesCount = extra
	return nil
}

func (o *Order) setCustomer(info customer.Info) error {
	if info.IsZero() {
		return errs.NewValueIsRequiredError("customerInfo")
	}
	o.customer = info
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at
	return nil
}
