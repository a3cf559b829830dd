package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand advances an order on behalf of actor. Reason is recorded only
// for admin changes.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	status  order.Status
	reason  string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	status order.Status,
	reason string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		status:  status,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
func (c ChangeOrderStatusCommand) Reason() string       { return c.reason }
