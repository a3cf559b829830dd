// Package kafka relays outbox messages to Kafka through a sarama SyncProducer.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"marketplace/internal/core/domain/model/outbox"

	"github.com/IBM/sarama"
)

const (
	producerTimeout = 5 * time.Second
	producerRetries = 3

	// MessageIDHeader carries the outbox message id so consumers can drop duplicates.
	MessageIDHeader = "message-id"
)

var ErrPublisherIsClosed = errors.New("kafka publisher is closed")

// Publisher implements ports.EventPublisher. Delivery is at-least-once: a batch that fails
// part-way is retried whole by the relay.
type Publisher struct {
	producer sarama.SyncProducer
	logger   *slog.Logger
	closed   atomic.Bool
}

func NewPublisher(brokers []string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = producerTimeout
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = producerRetries

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, logger), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, messages ...outbox.Message) error {
	if p.closed.Load() {
		return ErrPublisherIsClosed
	}
	if len(messages) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toProducerMessage(m))
	}

	if err := p.producer.SendMessages(batch); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish messages", "count", len(batch), "error", err)
		return fmt.Errorf("publish %d messages: %w", len(batch), err)
	}

	p.logger.DebugContext(ctx, "Messages published", "count", len(batch))
	return nil
}

func (p *Publisher) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	return p.producer.Close()
}

func toProducerMessage(m outbox.Message) *sarama.ProducerMessage {
	msg := &sarama.ProducerMessage{
		Topic:     m.Topic,
		Value:     sarama.ByteEncoder(m.Payload),
		Timestamp: m.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte(MessageIDHeader), Value: []byte(m.ID.String())},
		},
	}
	if m.Key != "" {
		msg.Key = sarama.StringEncoder(m.Key)
	}
	return msg
}
