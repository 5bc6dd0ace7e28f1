package commands

import (
	"context"
	"errors"
	"time"

	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/services"
	"configurator/internal/pkg/errs"
)

// CreateOrderCommandHandler persists orders submitted directly by a client.
//
// The client quote must match the server price. A request repeated with the
// same submission key returns the order created the first time.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assembler  services.OrderAssembler
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewOrderAssembler(),
	}
}

// Handle verifies the quote, assembles the order and stores it with its
// confirmation event in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.assembler.VerifyQuote(cmd.Plan(), cmd.Store(), cmd.TotalPrice(), cmd.ExtraAccessoriesCount()); err != nil {
		return nil, err
	}

	o, err := h.assembler.Assemble(cmd.SubmissionKey(), cmd.Plan(), cmd.Store(), cmd.Customer(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return persistOrder(ctx, h.uowFactory, o)
}

// persistOrder stores o unless an order with the same submission key exists,
// in which case that order is returned.
func persistOrder(ctx context.Context, uowFactory OrderUoWFactory, o *order.Order) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.GetBySubmissionKey(ctx, o.SubmissionKey())
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
