package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetDelivererAvailabilityCommandIsNotConstructed = errors.New(
	"SetDelivererAvailabilityCommand must be created via NewSetDelivererAvailabilityCommand constructor",
)

type SetDelivererAvailabilityCommand struct {
	delivererID kernel.UUID
	online      bool

	guard guard.ConstructorGuard
}

func NewSetDelivererAvailabilityCommand(actor kernel.Actor, online bool) (SetDelivererAvailabilityCommand, error) {
	if actor.Role != kernel.RoleDeliverer {
		return SetDelivererAvailabilityCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "change availability")
	}
	if err := actor.ID.Validate(); err != nil {
		return SetDelivererAvailabilityCommand{}, err
	}

	return SetDelivererAvailabilityCommand{
		delivererID: actor.ID,
		online:      online,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SetDelivererAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDelivererAvailabilityCommandIsNotConstructed)
}

func (c SetDelivererAvailabilityCommand) DelivererID() kernel.UUID { return c.delivererID }
func (c SetDelivererAvailabilityCommand) Online() bool             { return c.online }
