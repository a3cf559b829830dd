package trackingrepo

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

const batchSize = 100

type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTrackingRepository) AddAll(ctx context.Context, crumbs []*tracking.OrderTracking) error {
	if len(crumbs) == 0 {
		return nil
	}

	dtos := make([]OrderTrackingDTO, 0, len(crumbs))
	for _, c := range crumbs {
		dtos = append(dtos, fromDomain(c))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&dtos, batchSize).Error; err != nil {
		return err
	}

	for _, c := range crumbs {
		r.tracker.TrackAggregate(c.ID(), c)
	}
	return nil
}
