package queries

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCurrentLocationQueryHandler struct {
	db *gorm.DB
}

func NewGetCurrentLocationQueryHandler(db *gorm.DB) GetCurrentLocationQueryHandler {
	return GetCurrentLocationQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the deliverer has no active sample or the
// sample is older than the query's freshness window.
func (h GetCurrentLocationQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentLocationQuery,
) (CurrentLocation, error) {
	if err := query.Validate(); err != nil {
		return CurrentLocation{}, err
	}

	current, err := loadActiveLocation(ctx, h.db, query.DelivererID())
	if err != nil {
		return CurrentLocation{}, err
	}

	if current.RecordedAt.Before(time.Now().Add(-query.Freshness())) {
		return CurrentLocation{}, errs.NewObjectNotFoundErrorWithCause(
			"deliverer location", query.DelivererID().String(), errors.New("last position is stale"))
	}

	return current, nil
}

// loadActiveLocation returns errs.ErrObjectNotFound when the deliverer has no active sample.
func loadActiveLocation(ctx context.Context, db *gorm.DB, delivererID kernel.UUID) (CurrentLocation, error) {
	var row struct {
		Latitude       float64
		Longitude      float64
		AccuracyMeters *float64
		SpeedKmh       *float64
		HeadingDegrees *float64
		CreatedAt      time.Time
	}
	err := db.WithContext(ctx).Raw(`
		SELECT latitude, longitude, accuracy_meters, speed_kmh, heading_degrees, created_at
		FROM deliverer_locations
		WHERE deliverer_id = ? AND is_active
	`, delivererID.Bytes()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CurrentLocation{}, errs.NewObjectNotFoundError("deliverer location", delivererID.String())
		}
		return CurrentLocation{}, err
	}

	loc, err := kernel.NewLocation(row.Latitude, row.Longitude)
	if err != nil {
		return CurrentLocation{}, err
	}

	result := CurrentLocation{
		DelivererID: delivererID,
		Location:    loc,
		RecordedAt:  row.CreatedAt.UTC(),
	}
	result.Telemetry.AccuracyMeters = row.AccuracyMeters
	result.Telemetry.SpeedKmh = row.SpeedKmh
	result.Telemetry.HeadingDegrees = row.HeadingDegrees
	return result, nil
}
