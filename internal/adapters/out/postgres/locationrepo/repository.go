package locationrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// ReplaceActive expects the caller to hold the deliverer's profile lock. The partial unique
// index over active samples still rejects a second active row if it does not.
func (r *GormLocationRepository) ReplaceActive(ctx context.Context, location *tracking.DelivererLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if !location.IsActive() {
		return errs.NewValueIsInvalidError("location must be active")
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(location)

	if err := db.Model(&DelivererLocationDTO{}).
		Where("deliverer_id = ? AND is_active", dto.DelivererID).
		Update("is_active", false).Error; err != nil {
		return err
	}

	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.ID(), location)
	return nil
}

func (r *GormLocationRepository) GetActive(
	ctx context.Context,
	delivererID kernel.UUID,
) (*tracking.DelivererLocation, error) {
	if err := delivererID.Validate(); err != nil {
		return nil, err
	}

	var dto DelivererLocationDTO
	err := r.db.WithContext(ctx).
		Where("deliverer_id = ? AND is_active", delivererID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliverer location", delivererID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
