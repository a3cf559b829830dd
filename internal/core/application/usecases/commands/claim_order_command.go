package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand binds a ready order to the calling deliverer.
type ClaimOrderCommand struct {
	orderID     kernel.UUID
	delivererID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand only accepts deliverers; the claimant is always the caller.
func NewClaimOrderCommand(orderID kernel.UUID, actor kernel.Actor) (ClaimOrderCommand, error) {
	if actor.Role != kernel.RoleDeliverer {
		return ClaimOrderCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "claim orders")
	}
	if err := errors.Join(orderID.Validate(), actor.ID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		orderID:     orderID,
		delivererID: actor.ID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c ClaimOrderCommand) DelivererID() kernel.UUID { return c.delivererID }
