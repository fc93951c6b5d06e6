package kafkaadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"clip-market/internal/core/domain"
)

// Publisher writes ledger events to a Kafka topic as JSON. Messages are
// keyed by campaign id so a campaign's events keep their order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for topic on the given brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes events in a single batch.
func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs, err := toMessages(events)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d ledger events: %w", len(msgs), err)
	}
	return nil
}

// Close flushes pending writes and releases the connection.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessages(events []domain.Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		v, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshal %s event: %w", e.Type, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.Key()),
			Value: v,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.Type)},
			},
		})
	}
	return msgs, nil
}
