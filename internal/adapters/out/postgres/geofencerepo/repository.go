package geofencerepo

import (
	"context"

	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormGeofenceRepository struct {
	db *gorm.DB
}

func NewGormGeofenceRepository(db *gorm.DB) *GormGeofenceRepository {
	return &GormGeofenceRepository{db: db}
}

func (r *GormGeofenceRepository) Add(ctx context.Context, area *geofence.Area) error {
	if area == nil {
		return errs.NewValueIsRequiredError("area")
	}

	dto := fromDomain(area)
	return r.db.WithContext(ctx).Create(&dto).Error
}
