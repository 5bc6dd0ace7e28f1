package commands

import (
	"errors"

	"configurator/internal/core/domain/model/order"
	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is an operator moving an order through its lifecycle.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand takes the target status by its wire name.
func NewUpdateOrderStatusCommand(orderID int64, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() int64 { return c.orderID }

func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

func (c *UpdateOrderStatusCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", id, 1, "unbounded")
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
