package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryZonesQueryIsNotConstructed = errors.New(
	"GetDeliveryZonesQuery must be created via NewGetDeliveryZonesQuery constructor",
)

// GetDeliveryZonesQuery looks up the delivery zones covering a point.
type GetDeliveryZonesQuery struct {
	point kernel.Location

	guard guard.ConstructorGuard
}

func NewGetDeliveryZonesQuery(point kernel.Location) (GetDeliveryZonesQuery, error) {
	if err := point.Validate(); err != nil {
		return GetDeliveryZonesQuery{}, err
	}
	return GetDeliveryZonesQuery{point: point, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryZonesQueryIsNotConstructed)
}

func (q GetDeliveryZonesQuery) Point() kernel.Location { return q.point }

type DeliveryZone struct {
	ID           kernel.UUID
	Name         string
	Center       kernel.Location
	RadiusMeters float64
}

// DeliveryZones is the coverage of a point. Restricted is true when any active restricted
// area contains it, regardless of the zones found.
type DeliveryZones struct {
	Zones      []DeliveryZone
	Restricted bool
}
