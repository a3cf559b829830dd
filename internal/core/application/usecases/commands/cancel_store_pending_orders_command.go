package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelStorePendingOrdersCommandIsNotConstructed = errors.New(
	"CancelStorePendingOrdersCommand must be created via NewCancelStorePendingOrdersCommand constructor",
)

// CancelStorePendingOrdersCommand is the cascade of a store suspension.
type CancelStorePendingOrdersCommand struct {
	actor   kernel.Actor
	storeID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelStorePendingOrdersCommand(
	actor kernel.Actor,
	storeID kernel.UUID,
	reason string,
) (CancelStorePendingOrdersCommand, error) {
	if !actor.IsAdmin() {
		return CancelStorePendingOrdersCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "suspend stores")
	}
	if err := errors.Join(actor.ID.Validate(), storeID.Validate()); err != nil {
		return CancelStorePendingOrdersCommand{}, err
	}
	if reason == "" {
		return CancelStorePendingOrdersCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return CancelStorePendingOrdersCommand{
		actor:   actor,
		storeID: storeID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelStorePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStorePendingOrdersCommandIsNotConstructed)
}

func (c CancelStorePendingOrdersCommand) Actor() kernel.Actor  { return c.actor }
func (c CancelStorePendingOrdersCommand) StoreID() kernel.UUID { return c.storeID }
func (c CancelStorePendingOrdersCommand) Reason() string       { return c.reason }
