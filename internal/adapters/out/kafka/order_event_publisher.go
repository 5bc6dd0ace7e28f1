// Package kafka publishes stored order events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"configurator/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes each event as one message keyed by order id, so
// events of the same order stay in one partition and keep their order.
type OrderEventPublisher struct {
	writer messageWriter
	topic  string
}

func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return &OrderEventPublisher{writer: w, topic: topic}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: event.Payload,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(strconv.FormatInt(event.ID, 10))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, p.topic, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It stands in when no brokers are configured;
// events still get marked as dispatched.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.With("component", "noop_event_publisher")}
}

func (p *NoopPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	p.logger.DebugContext(ctx, "Dropping order event", "event_id", event.ID, "type", event.Type)
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
