// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventTypeStatusChanged is sent in the event_type header of every message.
const EventTypeStatusChanged = "order.status_changed"

// OrderStatusChangedEvent is the JSON payload of a status change message.
// From is empty for the creation event.
type OrderStatusChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderNumber string    `json:"order_number"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	Label       string    `json:"label"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderEventPublisher implements ports.OrderEventPublisher on a Kafka writer.
// Messages are keyed by order number so that the events of one order stay ordered.
type OrderEventPublisher struct {
	Writer MessageWriter
	newID  func() uuid.UUID
}

// NewOrderEventPublisher wraps writer.
func NewOrderEventPublisher(writer MessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{Writer: writer, newID: uuid.New}
}

// NewWriter returns a writer for topic on the broker at host.
func NewWriter(host, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(host),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// PublishStatusChanged writes event to the topic.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	msg, err := p.message(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

func (p *OrderEventPublisher) message(event ports.OrderStatusChanged) (kafka.Message, error) {
	payload := OrderStatusChangedEvent{
		EventID:     p.newID(),
		EventType:   EventTypeStatusChanged,
		OrderNumber: event.OrderNumber,
		To:          event.To.String(),
		Label:       event.Label,
		OccurredAt:  event.OccurredAt.UTC(),
	}
	if !event.IsCreation() {
		payload.From = event.From.String()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode order event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeStatusChanged)},
			{Key: "event_id", Value: []byte(payload.EventID.String())},
		},
		Time: payload.OccurredAt,
	}, nil
}

// NoopOrderEventPublisher drops every event. It is used when no broker is configured.
type NoopOrderEventPublisher struct{}

func (NoopOrderEventPublisher) PublishStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}
