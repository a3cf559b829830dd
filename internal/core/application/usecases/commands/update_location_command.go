package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand is one position report from a deliverer's device.
type UpdateLocationCommand struct {
	delivererID kernel.UUID
	location    kernel.Location
	telemetry   tracking.Telemetry

	guard guard.ConstructorGuard
}

func NewUpdateLocationCommand(
	actor kernel.Actor,
	latitude float64,
	longitude float64,
	telemetry tracking.Telemetry,
) (UpdateLocationCommand, error) {
	if actor.Role != kernel.RoleDeliverer {
		return UpdateLocationCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "report locations")
	}

	location, locErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(actor.ID.Validate(), locErr, telemetry.Validate()); err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{
		delivererID: actor.ID,
		location:    location,
		telemetry:   telemetry,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

func (c UpdateLocationCommand) DelivererID() kernel.UUID      { return c.delivererID }
func (c UpdateLocationCommand) Location() kernel.Location     { return c.location }
func (c UpdateLocationCommand) Telemetry() tracking.Telemetry { return c.telemetry }
