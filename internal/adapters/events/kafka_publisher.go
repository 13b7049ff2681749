package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher hands outbox events to Kafka, one topic per event kind.
// The partition key is the campaign id, so all events for a campaign land
// on the same partition and stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
	topics map[string]string
}

// NewKafkaPublisher maps event kinds to topics. Kinds missing from the map
// publish to a topic named after the kind, so the two dashboard events work
// without any topic configuration.
func NewKafkaPublisher(brokers []string, topics map[string]string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		topics: topics,
	}, nil
}

func (p *KafkaPublisher) topicFor(eventType string) string {
	if mapped, ok := p.topics[eventType]; ok && mapped != "" {
		return mapped
	}
	return eventType
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topicFor(eventType),
		Key:   []byte(partitionKey),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
