// Package delivererrepo persists deliverer dispatch profiles.
package delivererrepo

import (
	"time"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DelivererDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType     string    `gorm:"size:16"`
	VehiclePlate    string    `gorm:"size:16"`
	IsOnline        bool
	IsApproved      bool
	Rating          float64 `gorm:"type:numeric(3,2)"`
	TotalDeliveries int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DelivererDTO) TableName() string {
	return "deliverers"
}

func fromDomain(d *deliverer.Deliverer) DelivererDTO {
	return DelivererDTO{
		ID:              d.ID().Bytes(),
		VehicleType:     string(d.VehicleType()),
		VehiclePlate:    d.VehiclePlate(),
		IsOnline:        d.IsOnline(),
		IsApproved:      d.IsApproved(),
		Rating:          d.Rating(),
		TotalDeliveries: d.TotalDeliveries(),
	}
}

func toDomain(dto DelivererDTO) (*deliverer.Deliverer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return deliverer.RestoreDeliverer(
		id,
		deliverer.VehicleType(dto.VehicleType),
		dto.VehiclePlate,
		dto.IsOnline,
		dto.IsApproved,
		dto.Rating,
		dto.TotalDeliveries,
	)
}
