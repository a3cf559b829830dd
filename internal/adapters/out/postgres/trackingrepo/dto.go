// Package trackingrepo appends order breadcrumbs.
package trackingrepo

import (
	"time"

	"marketplace/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

type OrderTrackingDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid"`
	DelivererID         uuid.UUID `gorm:"type:uuid"`
	Latitude            float64
	Longitude           float64
	Stage               string `gorm:"size:16"`
	EstimatedArrival    time.Time
	DistanceRemainingKm float64
	CreatedAt           time.Time `gorm:"autoCreateTime:false"`
}

func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(t *tracking.OrderTracking) OrderTrackingDTO {
	return OrderTrackingDTO{
		ID:                  t.ID().Bytes(),
		OrderID:             t.OrderID().Bytes(),
		DelivererID:         t.DelivererID().Bytes(),
		Latitude:            t.Location().Latitude(),
		Longitude:           t.Location().Longitude(),
		Stage:               string(t.Stage()),
		EstimatedArrival:    t.EstimatedArrival(),
		DistanceRemainingKm: t.DistanceRemainingKm(),
		CreatedAt:           t.CreatedAt(),
	}
}
