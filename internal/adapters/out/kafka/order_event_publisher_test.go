package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"configurator/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestOrderEventPublisher_Publish(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := ports.OrderEvent{
		ID:        12,
		OrderID:   345,
		Type:      "order.confirmed",
		Payload:   []byte(`{"type":"order.confirmed","orderId":345}`),
		CreatedAt: createdAt,
	}

	t.Run("should key messages by order id", func(t *testing.T) {
		w := &recordingWriter{}
		p := &OrderEventPublisher{writer: w, topic: "orders.changed"}

		require.NoError(t, p.Publish(context.Background(), event))

		require.Len(t, w.messages, 1)
		msg := w.messages[0]
		assert.Equal(t, "345", string(msg.Key))
		assert.JSONEq(t, string(event.Payload), string(msg.Value))
		assert.Equal(t, createdAt, msg.Time)
		assert.Equal(t, "order.confirmed", header(msg, "event_type"))
		assert.Equal(t, "12", header(msg, "event_id"))
	})

	t.Run("should wrap writer errors", func(t *testing.T) {
		cause := errors.New("leader not available")
		p := &OrderEventPublisher{writer: &recordingWriter{err: cause}, topic: "orders.changed"}

		err := p.Publish(context.Background(), event)

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "orders.changed")
	})

	t.Run("should close the writer", func(t *testing.T) {
		w := &recordingWriter{}
		p := &OrderEventPublisher{writer: w}

		require.NoError(t, p.Close())

		assert.True(t, w.closed)
	})
}

func TestNewOrderEventPublisher(t *testing.T) {
	p := NewOrderEventPublisher([]string{"localhost:9092"}, "orders.changed")

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "orders.changed", w.Topic)
	assert.IsType(t, &kafka.LeastBytes{}, w.Balancer)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, p.Publish(context.Background(), ports.OrderEvent{ID: 1, Type: "order.confirmed"}))
	require.NoError(t, p.Close())
}
