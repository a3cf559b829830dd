// Package outboxrepo stores domain events until the relay publishes them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic       string
	Key         string
	Payload     string    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	PublishedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID.Bytes(),
		Topic:       m.Topic,
		Key:         m.Key,
		Payload:     string(m.Payload),
		CreatedAt:   m.CreatedAt,
		PublishedAt: m.PublishedAt,
	}
}

func toDomain(dto MessageDTO) (outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return outbox.Message{}, err
	}
	return outbox.Message{
		ID:          id,
		Topic:       dto.Topic,
		Key:         dto.Key,
		Payload:     json.RawMessage(dto.Payload),
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
