package order

import "time"

// EventType names a domain event on the wire.
type EventType string

const (
	// EventConfirmed is raised once, when a new order is accepted.
	EventConfirmed EventType = "order.confirmed"
	// EventStatusChanged is raised whenever the status actually changes.
	EventStatusChanged EventType = "order.status_changed"
)

// Event is a domain event raised by an Order. The order id is read from the
// aggregate when the event is stored, since new orders get theirs on insert.
type Event struct {
	Type       EventType
	From       Status
	To         Status
	OccurredAt time.Time
}
