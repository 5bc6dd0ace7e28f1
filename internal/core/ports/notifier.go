package ports

import (
	"context"
	"time"
)

// OrderNotification is what the customer and the shop are told about a new order.
type OrderNotification struct {
	OrderID       int64
	CustomerName  string
	CustomerEmail string
	PlanName      string
	TotalPrice    int64
}

// Notifier delivers order notifications. Failures are reported to the caller
// and never affect the order.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, n OrderNotification) error
}

// OrderEventMessage is the payload of an order event, as stored in the outbox
// and as published.
type OrderEventMessage struct {
	Type           string    `json:"type"`
	OrderID        int64     `json:"orderId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	PlanName       string    `json:"planName"`
	TotalPrice     int64     `json:"totalPrice"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Notification extracts the notifier hand-off from the message.
func (m OrderEventMessage) Notification() OrderNotification {
	return OrderNotification{
		OrderID:       m.OrderID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		PlanName:      m.PlanName,
		TotalPrice:    m.TotalPrice,
	}
}

// EventPublisher forwards stored order events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
