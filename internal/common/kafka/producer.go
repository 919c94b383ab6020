package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes CloudEvents to Kafka topics. One writer is shared
// across topics; the topic is set per message.
type Producer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewProducer creates a Producer connected to the given brokers.
func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	return &Producer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Balancer:     &kafkago.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafkago.RequireOne,
		},
		logger: logger,
	}
}

// PublishEvent writes a CloudEvent to topic, keyed by the event ID so
// events for the same entity stay ordered within a partition.
func (p *Producer) PublishEvent(ctx context.Context, topic string, event CloudEvent) error {
	return p.Publish(ctx, topic, event.ID, event)
}

// Publish writes an arbitrary JSON payload to topic with the given key.
func (p *Producer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}

	p.logger.Debug("message published",
		zap.String("topic", topic),
		zap.String("key", key),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
