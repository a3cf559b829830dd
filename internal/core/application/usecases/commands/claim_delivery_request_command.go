package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrClaimDeliveryRequestCommandIsNotConstructed = errors.New(
	"ClaimDeliveryRequestCommand must be created via NewClaimDeliveryRequestCommand constructor",
)

type ClaimDeliveryRequestCommand struct {
	requestID   kernel.UUID
	delivererID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimDeliveryRequestCommand(requestID kernel.UUID, actor kernel.Actor) (ClaimDeliveryRequestCommand, error) {
	if actor.Role != kernel.RoleDeliverer {
		return ClaimDeliveryRequestCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "claim delivery requests")
	}
	if err := errors.Join(requestID.Validate(), actor.ID.Validate()); err != nil {
		return ClaimDeliveryRequestCommand{}, err
	}

	return ClaimDeliveryRequestCommand{
		requestID:   requestID,
		delivererID: actor.ID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrClaimDeliveryRequestCommandIsNotConstructed)
}

func (c ClaimDeliveryRequestCommand) RequestID() kernel.UUID   { return c.requestID }
func (c ClaimDeliveryRequestCommand) DelivererID() kernel.UUID { return c.delivererID }
