package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/outbox"
)

type OutboxRepository interface {
	Add(ctx context.Context, messages ...outbox.Message) error

	// GetUnpublished returns up to limit messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]outbox.Message, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...outbox.Message) error
}
