package services

import (
	"errors"
	"fmt"
	"time"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"
)

// ErrNoCompleteFigures is returned when a configuration has nothing worth ordering.
var ErrNoCompleteFigures = errors.New("no figure is completely configured")

// QuoteMismatchError reports a client-computed price that differs from the server's.
type QuoteMismatchError struct {
	ClaimedTotal int64
	ActualTotal  int64
	ClaimedExtra int
	ActualExtra  int
}

func (e *QuoteMismatchError) Error() string {
	return fmt.Sprintf(
		"quoted price %d with %d extra accessories does not match %d with %d extra accessories",
		e.ClaimedTotal, e.ClaimedExtra, e.ActualTotal, e.ActualExtra,
	)
}

func (e *QuoteMismatchError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// OrderAssembler turns a finished configuration into a pending order.
//
// Incomplete figures are left out of the order; at least one complete figure
// is required. Price and extra accessory count are always recomputed here.
//
// Example:
//
//	assembler := services.NewOrderAssembler()
//	if err := assembler.VerifyQuote(p, store, req.TotalPrice, req.ExtraAccessoriesCount); err != nil {
//	    return err
//	}
//	o, err := assembler.Assemble(key, p, store, info, time.Now())
type OrderAssembler struct{}

func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// VerifyQuote checks a client quote against the server-side price of the store.
func (OrderAssembler) VerifyQuote(p plan.Plan, store selection.Store, totalPrice int64, extra int) error {
	pricing := NewPriceCalculator(p, store)
	actualTotal, actualExtra := pricing.TotalPrice(), pricing.ExtraAccessoryCount()
	if actualTotal != totalPrice || actualExtra != extra {
		return &QuoteMismatchError{
			ClaimedTotal: totalPrice,
			ActualTotal:  actualTotal,
			ClaimedExtra: extra,
			ActualExtra:  actualExtra,
		}
	}
	return nil
}

// Assemble builds the order for store under p, keyed by the draft id.
func (OrderAssembler) Assemble(
	key kernel.UUID,
	p plan.Plan,
	store selection.Store,
	info customer.Info,
	at time.Time,
) (*order.Order, error) {
	if err := errors.Join(p.Validate(), store.Validate()); err != nil {
		return nil, err
	}

	var figures []order.FigureSnapshot
	for fig := 1; fig <= p.MaxFigures(); fig++ {
		f, err := store.Figure(fig)
		if err != nil || !IsFigureComplete(f) {
			continue
		}
		snapshot, err := order.NewFigureSnapshot(fig, f)
		if err != nil {
			return nil, err
		}
		figures = append(figures, snapshot)
	}
	if len(figures) == 0 {
		return nil, ErrNoCompleteFigures
	}

	pricing := NewPriceCalculator(p, store)

	return order.NewOrder(order.Params{
		SubmissionKey:         key,
		Plan:                  p,
		Figures:               figures,
		TotalPrice:            pricing.TotalPrice(),
		ExtraAccessoriesCount: pricing.ExtraAccessoryCount(),
		AddOns:                store.AddOns(),
		Customer:              info,
		CreatedAt:             at,
	})
}
