package ports

import (
	"context"
	"time"
)

// OrderEvent is a stored domain event waiting to be dispatched.
type OrderEvent struct {
	ID        int64
	OrderID   int64
	Type      string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
	// Notified is set once the notifier has been tried for this event.
	Notified bool
}

// OrderEventRepository is the outbox of order events. Events are written in
// the same transaction as the order that raised them.
type OrderEventRepository interface {
	// GetUnprocessed returns up to limit events not yet dispatched and tried
	// fewer than maxAttempts times, oldest first.
	GetUnprocessed(ctx context.Context, limit, maxAttempts int) ([]OrderEvent, error)

	// MarkProcessed records a successful dispatch.
	MarkProcessed(ctx context.Context, id int64) error

	// MarkNotified records that the notification for the event was attempted,
	// independently of publishing.
	MarkNotified(ctx context.Context, id int64) error

	// MarkFailed counts a failed dispatch attempt.
	MarkFailed(ctx context.Context, id int64, cause string) error

	// DeleteProcessedBefore removes dispatched events older than before and
	// returns how many were removed.
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}
