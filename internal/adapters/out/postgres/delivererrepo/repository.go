package delivererrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDelivererRepository implements ports.DelivererRepository using GORM.
// Timestamps are owned by the database.
type GormDelivererRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDelivererRepository(db *gorm.DB, tracker aggregateTracker) *GormDelivererRepository {
	return &GormDelivererRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDelivererRepository) Add(ctx context.Context, aggregate *deliverer.Deliverer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDelivererRepository) Update(ctx context.Context, aggregate *deliverer.Deliverer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DelivererDTO{}).
		Where("id = ?", dto.ID).
		Select("vehicle_type", "vehicle_plate", "is_online", "is_approved", "rating", "total_deliveries", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliverer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDelivererRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormDelivererRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormDelivererRepository) get(db *gorm.DB, id kernel.UUID) (*deliverer.Deliverer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DelivererDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliverer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
