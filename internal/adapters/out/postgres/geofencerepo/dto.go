// Package geofencerepo persists store areas, delivery zones and restricted areas.
package geofencerepo

import (
	"time"

	"marketplace/internal/core/domain/model/geofence"

	"github.com/google/uuid"
)

type AreaDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	AreaType        string
	IsActive        bool
	CreatedAt       time.Time
}

func (AreaDTO) TableName() string {
	return "geofence_areas"
}

func fromDomain(area *geofence.Area) AreaDTO {
	return AreaDTO{
		ID:              area.ID().Bytes(),
		Name:            area.Name(),
		CenterLatitude:  area.Center().Latitude(),
		CenterLongitude: area.Center().Longitude(),
		RadiusMeters:    area.RadiusMeters(),
		AreaType:        string(area.Type()),
		IsActive:        area.IsActive(),
		CreatedAt:       area.CreatedAt(),
	}
}
