// Package postgres provides the GORM-based Unit of Work of the configurator.
//
// A unit of work wraps one database transaction. Orders saved through its
// repository are tracked, and on Commit the domain events they raised are
// written to the order_events outbox inside the same transaction, so an order
// and its events are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin, or without Begin at all, run directly on
// the connection pool. The dispatch job reads and marks outbox rows this way.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"configurator/internal/adapters/out/postgres/eventrepo"
	"configurator/internal/adapters/out/postgres/orderrepo"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances are not safe for concurrent use.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one transaction and the events of the orders
// saved within it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []*order.Order
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the pending events of every tracked order and commits.
// Events are cleared from the aggregates only once the commit succeeded.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, o := range uow.tracked {
		o.ClearDomainEvents()
	}
	uow.tracked = nil
	return nil
}

// Rollback discards the transaction and forgets tracked orders.
// It returns gorm.ErrInvalidTransaction when no transaction is open, which
// deferred rollbacks after a successful Commit ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.tracked = nil
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderEventRepository() ports.OrderEventRepository {
	return eventrepo.NewGormOrderEventRepository(uow.conn())
}

// TrackAggregate registers an order saved within this unit of work.
// Tracking the same order twice keeps a single entry.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	for _, o := range uow.tracked {
		if o == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	events := eventrepo.NewGormOrderEventRepository(uow.tx)

	for _, o := range uow.tracked {
		for _, e := range o.DomainEvents() {
			payload, err := json.Marshal(newEventMessage(o, e))
			if err != nil {
				return fmt.Errorf("encode %s event of order %d: %w", e.Type, o.ID(), err)
			}
			if err = events.Append(ctx, o.ID(), string(e.Type), payload, e.OccurredAt); err != nil {
				return err
			}
		}
	}

	return nil
}

func newEventMessage(o *order.Order, e order.Event) ports.OrderEventMessage {
	msg := ports.OrderEventMessage{
		Type:          string(e.Type),
		OrderID:       o.ID(),
		Status:        e.To.String(),
		CustomerName:  o.Customer().Name(),
		CustomerEmail: o.Customer().Email(),
		PlanName:      o.Plan().Name(),
		TotalPrice:    o.TotalPrice(),
		OccurredAt:    e.OccurredAt,
	}
	if e.From != order.Unknown {
		msg.PreviousStatus = e.From.String()
	}
	return msg
}
