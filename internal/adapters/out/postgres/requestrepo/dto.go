// Package requestrepo persists ad-hoc delivery requests.
package requestrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"

	"github.com/google/uuid"
)

type DeliveryRequestDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID  `gorm:"type:uuid"`
	DelivererID      *uuid.UUID `gorm:"type:uuid"`
	PickupAddress    string
	PickupLatitude   *float64
	PickupLongitude  *float64
	DropoffAddress   string
	DropoffLatitude  *float64
	DropoffLongitude *float64
	ItemDescription  string
	EstimatedPrice   float64 `gorm:"type:numeric(10,2)"`
	EstimatedMinutes int
	PaymentMethod    string    `gorm:"size:8"`
	Status           string    `gorm:"size:16"`
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

func fromDomain(r *request.DeliveryRequest) DeliveryRequestDTO {
	var delivererID *uuid.UUID
	if id := r.Deliverer(); id != nil {
		raw := id.Bytes()
		delivererID = &raw
	}

	pickupLat, pickupLon := coordinates(r.Pickup().Location)
	dropoffLat, dropoffLon := coordinates(r.Dropoff().Location)

	return DeliveryRequestDTO{
		ID:               r.ID().Bytes(),
		ClientID:         r.ClientID().Bytes(),
		DelivererID:      delivererID,
		PickupAddress:    r.Pickup().Address,
		PickupLatitude:   pickupLat,
		PickupLongitude:  pickupLon,
		DropoffAddress:   r.Dropoff().Address,
		DropoffLatitude:  dropoffLat,
		DropoffLongitude: dropoffLon,
		ItemDescription:  r.ItemDescription(),
		EstimatedPrice:   r.Estimate().Price,
		EstimatedMinutes: r.Estimate().Minutes,
		PaymentMethod:    string(r.PaymentMethod()),
		Status:           r.Status().String(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func coordinates(loc *kernel.Location) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	lat, lon := loc.Latitude(), loc.Longitude()
	return &lat, &lon
}

func endpoint(address string, lat, lon *float64) (request.Endpoint, error) {
	e := request.Endpoint{Address: address}
	if lat == nil || lon == nil {
		return e, nil
	}
	loc, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return request.Endpoint{}, err
	}
	e.Location = &loc
	return e, nil
}

func toDomain(dto DeliveryRequestDTO) (*request.DeliveryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var delivererID *kernel.UUID
	if dto.DelivererID != nil {
		dID, delivererErr := kernel.UUIDFromBytes((*dto.DelivererID)[:])
		if delivererErr != nil {
			return nil, delivererErr
		}
		delivererID = &dID
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := endpoint(dto.PickupAddress, dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}
	dropoff, err := endpoint(dto.DropoffAddress, dto.DropoffLatitude, dto.DropoffLongitude)
	if err != nil {
		return nil, err
	}

	return request.RestoreDeliveryRequest(request.Snapshot{
		ID:              id,
		ClientID:        clientID,
		DelivererID:     delivererID,
		Pickup:          pickup,
		Dropoff:         dropoff,
		ItemDescription: dto.ItemDescription,
		Estimate:        request.Estimate{Price: dto.EstimatedPrice, Minutes: dto.EstimatedMinutes},
		PaymentMethod:   kernel.PaymentMethod(dto.PaymentMethod),
		Status:          status,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
