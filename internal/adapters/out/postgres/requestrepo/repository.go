package requestrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDeliveryRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRequestRepository) Add(ctx context.Context, aggregate *request.DeliveryRequest) error {
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

func (r *GormDeliveryRequestRepository) Update(ctx context.Context, aggregate *request.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim only changes the row while it is still pending and unassigned.
func (r *GormDeliveryRequestRepository) Claim(ctx context.Context, aggregate *request.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	delivererID := aggregate.Deliverer()
	if delivererID == nil {
		return errs.NewValueIsRequiredError("delivery request deliverer")
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ? AND status = ? AND deliverer_id IS NULL", aggregate.ID().Bytes(), request.Pending.String()).
		Updates(map[string]any{
			"deliverer_id": delivererID.Bytes(),
			"status":       aggregate.Status().String(),
			"updated_at":   aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.claimConflict(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// claimConflict explains a claim that matched no row: someone else holds the job, or it
// left the claimable state, or it is gone.
func (r *GormDeliveryRequestRepository) claimConflict(ctx context.Context, id kernel.UUID) error {
	var current DeliveryRequestDTO
	err := r.db.WithContext(ctx).Select("status", "deliverer_id").First(&current, "id = ?", id.Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError("delivery request", id.String())
	case err != nil:
		return err
	case current.DelivererID != nil:
		return errs.NewObjectIsAlreadyAssignedError("delivery request", id.String())
	default:
		return errs.NewStateIsInvalidError("delivery request", current.Status)
	}
}

func (r *GormDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormDeliveryRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*request.DeliveryRequest, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormDeliveryRequestRepository) get(db *gorm.DB, id kernel.UUID) (*request.DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryRequestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
