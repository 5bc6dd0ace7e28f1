package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. A UnitOfWork
// is not safe for concurrent use.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events raised by aggregates
// saved through its repositories are written to the outbox on Commit, inside
// the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit stores pending domain events and commits. It fails when Begin
	// was not called.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and any pending events.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrderEventRepository returns the outbox bound to the current transaction.
	OrderEventRepository() OrderEventRepository
}
