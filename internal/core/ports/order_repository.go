// Package ports defines the contracts between the configurator core and its adapters.
// Repositories, the draft store, the event publisher and the notifier are all
// declared here so the application layer depends on interfaces only.
package ports

import (
	"context"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its id through order.AssignID.
	// A second order with the same submission key is rejected with errs.ErrConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its figures.
	// Returns *errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Concurrent status changes on one order queue behind it.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetBySubmissionKey finds the order created from a draft, if any.
	// Returns *errs.ObjectNotFoundError when the draft produced no order yet.
	GetBySubmissionKey(ctx context.Context, key kernel.UUID) (*order.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context) ([]*order.Order, error)
}
