package geofence

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AreaType tags what a geofence is used for.
type AreaType string

const (
	AreaStore        AreaType = "store"
	AreaDeliveryZone AreaType = "delivery_zone"
	AreaRestricted   AreaType = "restricted"
)

func (t AreaType) Validate() error {
	switch t {
	case AreaStore, AreaDeliveryZone, AreaRestricted:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("area type", fmt.Errorf("%q is not supported", string(t)))
}

// Area is a named circular region.
type Area struct {
	id           kernel.UUID
	name         string
	center       kernel.Location
	radiusMeters float64
	areaType     AreaType
	isActive     bool
	createdAt    time.Time
}

func NewArea(
	id kernel.UUID,
	name string,
	center kernel.Location,
	radiusMeters float64,
	areaType AreaType,
	isActive bool,
	createdAt time.Time,
) (*Area, error) {
	var errList []error
	errList = append(errList, id.Validate(), center.Validate(), areaType.Validate())
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("area name"))
	}
	if radiusMeters <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("radius", radiusMeters, "0 (exclusive)", "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Area{
		id:           id,
		name:         name,
		center:       center,
		radiusMeters: radiusMeters,
		areaType:     areaType,
		isActive:     isActive,
		createdAt:    createdAt,
	}, nil
}

func (a *Area) ID() kernel.UUID         { return a.id }
func (a *Area) Name() string            { return a.name }
func (a *Area) Center() kernel.Location { return a.center }
func (a *Area) RadiusMeters() float64   { return a.radiusMeters }
func (a *Area) Type() AreaType          { return a.areaType }
func (a *Area) IsActive() bool          { return a.isActive }
func (a *Area) CreatedAt() time.Time    { return a.createdAt }

// Contains reports whether point lies within the radius (inclusive).
func (a *Area) Contains(point kernel.Location) (bool, error) {
	km, err := a.center.DistanceTo(point)
	if err != nil {
		return false, err
	}
	return km*1000 <= a.radiusMeters, nil
}
