package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"foodreview/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	// DefaultPublishTimeout bounds how long a request waits on the brokers.
	DefaultPublishTimeout = 500 * time.Millisecond
	batchTimeout          = 10 * time.Millisecond
)

// KafkaPublisher writes review events to a topic, keyed by food id so that
// all events of one food land on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher flushes every write within batchTimeout. A timeout <= 0
// uses DefaultPublishTimeout.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
		timeout: timeout,
	}
}

// Publish gives up after the publisher timeout even when ctx allows longer.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.ReviewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", event.Type, err)
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.FoodID.Hex()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("events: write %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.ReviewEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
