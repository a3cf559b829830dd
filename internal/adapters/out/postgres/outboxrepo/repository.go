package outboxrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBatchSize bounds GetUnpublished when callers pass a non-positive limit.
const DefaultBatchSize = 100

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	var errList []error
	for _, m := range messages {
		if err := m.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		dtos = append(dtos, fromDomain(m))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished skips rows locked by another relay so two relays never send the same batch.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Raw(`SELECT id, topic, key, payload, created_at, published_at
			FROM outbox_messages
			WHERE published_at IS NULL
			ORDER BY created_at ASC
			LIMIT ?
			FOR UPDATE SKIP LOCKED`, limit).
		Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("outbox message id", err)
		}
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ? AND published_at IS NULL", raw).
		Update("published_at", at).Error
}
