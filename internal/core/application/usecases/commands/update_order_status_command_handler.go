package commands

import (
	"context"
	"time"

	"configurator/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies status changes.
//
// The order row stays locked from read to commit, so concurrent changes to
// one order run one after another and the last one wins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the order after the change. Requesting the current status
// returns the order untouched and writes nothing.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changed, err := o.ChangeStatus(cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
