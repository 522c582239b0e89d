// Package messaging publishes order events after their transaction committed.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Envelope is the JSON value of every message written to the order events topic.
type Envelope struct {
	EventID    string      `json:"event_id"`
	EventType  string      `json:"event_type"`
	OrderID    int64       `json:"order_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    order.Event `json:"payload"`
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes events keyed by order id so that the events of one
// order stay in one partition and keep their order.
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now}
}

// NewKafkaWriter builds the writer for the order events topic.
func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// Publish writes all events in one batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		envelope := Envelope{
			EventID:    uuid.NewString(),
			EventType:  event.Name(),
			OrderID:    event.OrderID(),
			OccurredAt: p.now().UTC(),
			Payload:    event,
		}
		value, err := json.Marshal(envelope)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", event.Name(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(strconv.FormatInt(event.OrderID(), 10)),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.Name())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write order events: %w", err)
	}
	return nil
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "order event",
			"event_type", event.Name(),
			"order_id", event.OrderID(),
		)
	}
	return nil
}
