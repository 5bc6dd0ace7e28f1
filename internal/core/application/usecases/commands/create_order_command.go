package commands

import (
	"errors"
	"fmt"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is an order submitted in one request by a client that ran
// the configurator itself. Nothing in it is trusted: the quote is re-checked
// and incomplete figures are dropped by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), p, store, 10500, 1, form)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	submissionKey         kernel.UUID
	plan                  plan.Plan
	store                 selection.Store
	totalPrice            int64
	extraAccessoriesCount int
	customer              customer.Info

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Contact errors come back
// as *customer.ValidationError inside the joined error.
func NewCreateOrderCommand(
	submissionKey kernel.UUID,
	p plan.Plan,
	store selection.Store,
	totalPrice int64,
	extraAccessoriesCount int,
	form customer.Form,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		totalPrice:            totalPrice,
		extraAccessoriesCount: extraAccessoriesCount,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionKey(submissionKey),
		cmd.setPlanAndStore(p, store),
		cmd.setCustomer(form),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SubmissionKey makes retries of the same request idempotent.
func (c CreateOrderCommand) SubmissionKey() kernel.UUID { return c.submissionKey }

func (c CreateOrderCommand) Plan() plan.Plan { return c.plan }

func (c CreateOrderCommand) Store() selection.Store { return c.store }

// TotalPrice is the price the client computed.
func (c CreateOrderCommand) TotalPrice() int64 { return c.totalPrice }

// ExtraAccessoriesCount is the overage the client computed.
func (c CreateOrderCommand) ExtraAccessoriesCount() int { return c.extraAccessoriesCount }

func (c CreateOrderCommand) Customer() customer.Info { return c.customer }

func (c *CreateOrderCommand) setSubmissionKey(key kernel.UUID) error {
	if err := key.Validate(); err != nil {
		return err
	}
	c.submissionKey = key
	return nil
}

func (c *CreateOrderCommand) setPlanAndStore(p plan.Plan, store selection.Store) error {
	if err := errors.Join(p.Validate(), store.Validate()); err != nil {
		return err
	}
	if store.Size() != p.MaxFigures() {
		return errs.NewValueIsInvalidErrorWithCause(
			"selections",
			fmt.Errorf("plan %s has %d figures, got %d", p.ID(), p.MaxFigures(), store.Size()),
		)
	}
	c.plan = p
	c.store = store
	return nil
}

func (c *CreateOrderCommand) setCustomer(form customer.Form) error {
	info, err := customer.NewInfo(form)
	if err != nil {
		return err
	}
	c.customer = info
	return nil
}
