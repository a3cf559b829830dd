package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReassignOrderCommandIsNotConstructed = errors.New(
	"ReassignOrderCommand must be created via NewReassignOrderCommand constructor",
)

type ReassignOrderCommand struct {
	orderID     kernel.UUID
	delivererID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewReassignOrderCommand is admin only.
func NewReassignOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	delivererID kernel.UUID,
	reason string,
) (ReassignOrderCommand, error) {
	if !actor.IsAdmin() {
		return ReassignOrderCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "reassign orders")
	}
	if err := errors.Join(orderID.Validate(), delivererID.Validate()); err != nil {
		return ReassignOrderCommand{}, err
	}

	return ReassignOrderCommand{
		orderID:     orderID,
		delivererID: delivererID,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
}

func (c ReassignOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c ReassignOrderCommand) DelivererID() kernel.UUID { return c.delivererID }
func (c ReassignOrderCommand) Reason() string           { return c.reason }
