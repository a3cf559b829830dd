package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterDelivererCommandIsNotConstructed = errors.New(
	"RegisterDelivererCommand must be created via NewRegisterDelivererCommand constructor",
)

// RegisterDelivererCommand creates the dispatch profile of the calling deliverer.
type RegisterDelivererCommand struct {
	delivererID  kernel.UUID
	vehicleType  deliverer.VehicleType
	vehiclePlate string

	guard guard.ConstructorGuard
}

func NewRegisterDelivererCommand(
	actor kernel.Actor,
	vehicleType deliverer.VehicleType,
	vehiclePlate string,
) (RegisterDelivererCommand, error) {
	if actor.Role != kernel.RoleDeliverer {
		return RegisterDelivererCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "register as deliverer")
	}
	if err := errors.Join(actor.ID.Validate(), vehicleType.Validate()); err != nil {
		return RegisterDelivererCommand{}, err
	}

	return RegisterDelivererCommand{
		delivererID:  actor.ID,
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDelivererCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDelivererCommandIsNotConstructed)
}

func (c RegisterDelivererCommand) DelivererID() kernel.UUID           { return c.delivererID }
func (c RegisterDelivererCommand) VehicleType() deliverer.VehicleType { return c.vehicleType }
func (c RegisterDelivererCommand) VehiclePlate() string               { return c.vehiclePlate }
