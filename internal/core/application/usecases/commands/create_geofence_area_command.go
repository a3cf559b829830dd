package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateGeofenceAreaCommandIsNotConstructed = errors.New(
	"CreateGeofenceAreaCommand must be created via NewCreateGeofenceAreaCommand constructor",
)

// CreateGeofenceAreaCommand registers a new active area. An empty area type means a delivery zone.
type CreateGeofenceAreaCommand struct {
	areaID       kernel.UUID
	name         string
	center       kernel.Location
	radiusMeters float64
	areaType     geofence.AreaType

	guard guard.ConstructorGuard
}

func NewCreateGeofenceAreaCommand(
	actor kernel.Actor,
	areaID kernel.UUID,
	name string,
	center kernel.Location,
	radiusMeters float64,
	areaType geofence.AreaType,
) (CreateGeofenceAreaCommand, error) {
	if !actor.IsAdmin() {
		return CreateGeofenceAreaCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "create geofence areas")
	}
	if areaType == "" {
		areaType = geofence.AreaDeliveryZone
	}

	var errList []error
	errList = append(errList, areaID.Validate(), center.Validate(), areaType.Validate())
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("area name"))
	}
	if radiusMeters <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("radius", radiusMeters, "0 (exclusive)", "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateGeofenceAreaCommand{}, err
	}

	return CreateGeofenceAreaCommand{
		areaID:       areaID,
		name:         name,
		center:       center,
		radiusMeters: radiusMeters,
		areaType:     areaType,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateGeofenceAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateGeofenceAreaCommandIsNotConstructed)
}

func (c CreateGeofenceAreaCommand) AreaID() kernel.UUID         { return c.areaID }
func (c CreateGeofenceAreaCommand) Name() string                { return c.name }
func (c CreateGeofenceAreaCommand) Center() kernel.Location     { return c.center }
func (c CreateGeofenceAreaCommand) RadiusMeters() float64       { return c.radiusMeters }
func (c CreateGeofenceAreaCommand) AreaType() geofence.AreaType { return c.areaType }
