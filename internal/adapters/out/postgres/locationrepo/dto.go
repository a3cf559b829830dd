// Package locationrepo persists deliverer position samples.
package locationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

type DelivererLocationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DelivererID    uuid.UUID `gorm:"type:uuid"`
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	SpeedKmh       *float64
	HeadingDegrees *float64
	IsActive       bool
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
}

func (DelivererLocationDTO) TableName() string {
	return "deliverer_locations"
}

func fromDomain(l *tracking.DelivererLocation) DelivererLocationDTO {
	tel := l.Telemetry()
	return DelivererLocationDTO{
		ID:             l.ID().Bytes(),
		DelivererID:    l.DelivererID().Bytes(),
		Latitude:       l.Location().Latitude(),
		Longitude:      l.Location().Longitude(),
		AccuracyMeters: tel.AccuracyMeters,
		SpeedKmh:       tel.SpeedKmh,
		HeadingDegrees: tel.HeadingDegrees,
		IsActive:       l.IsActive(),
		CreatedAt:      l.CreatedAt(),
	}
}

func toDomain(dto DelivererLocationDTO) (*tracking.DelivererLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	delivererID, err := kernel.UUIDFromBytes(dto.DelivererID[:])
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreDelivererLocation(
		id,
		delivererID,
		loc,
		tracking.Telemetry{
			AccuracyMeters: dto.AccuracyMeters,
			SpeedKmh:       dto.SpeedKmh,
			HeadingDegrees: dto.HeadingDegrees,
		},
		dto.IsActive,
		dto.CreatedAt,
	)
}
