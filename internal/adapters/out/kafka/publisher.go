// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventMessage is the JSON payload of a published order event.
type OrderEventMessage struct {
	Kind         string    `json:"kind"`
	OrderID      string    `json:"orderId"`
	CustomerID   string    `json:"customerId"`
	RestaurantID string    `json:"restaurantId"`
	From         string    `json:"from,omitempty"`
	To           string    `json:"to"`
	TotalAmount  string    `json:"totalAmount"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// OrderEventPublisher writes one message per event, keyed by order id so
// that events of an order stay in one partition.
type OrderEventPublisher struct {
	writer MessageWriter
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher publishes through writer and closes it on Close.
func NewOrderEventPublisher(writer MessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// NewWriter builds a writer for topic on the brokers at addr.
func NewWriter(addr, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(addr),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, evs ...order.Event) error {
	if len(evs) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evs))
	for _, e := range evs {
		payload, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.Kind, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: payload,
			Time:  e.OccurredAt,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(e order.Event) OrderEventMessage {
	msg := OrderEventMessage{
		Kind:         string(e.Kind),
		OrderID:      e.OrderID.String(),
		CustomerID:   e.CustomerID.String(),
		RestaurantID: e.RestaurantID.String(),
		To:           e.To.String(),
		TotalAmount:  e.Total.String(),
		OccurredAt:   e.OccurredAt,
	}
	if e.From != order.Unknown {
		msg.From = e.From.String()
	}
	return msg
}
