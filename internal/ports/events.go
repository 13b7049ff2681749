package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}

type OutboxEvent struct {
	EventID       uuid.UUID
	EventType     string
	PartitionKey  string
	Payload       []byte
	OccurredAt    time.Time
	SchemaVersion string
}

type OutboxRecord struct {
	OutboxID     uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	PublishedAt  *time.Time
	LastError    *string
	FirstSeenAt  time.Time
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error
}
