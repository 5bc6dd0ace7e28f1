// Package commands contains the operations that change configurator state:
// drafts moving through the wizard, orders being created or changing status,
// and stored order events being dispatched.
// Every command is built through its constructor and checked by Validate
// before its handler touches any adapter.
package commands

import (
	"context"

	"configurator/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderEventRepoFactory provides access to the event outbox within a transaction.
	OrderEventRepoFactory interface {
		OrderEventRepository() ports.OrderEventRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderEventUoW gives access to the outbox, with or without a transaction.
	OrderEventUoW interface {
		TxManager
		OrderEventRepoFactory
	}

	// OrderEventUoWFactory creates new outbox unit of work instances.
	OrderEventUoWFactory interface {
		Create() OrderEventUoW
	}
)
