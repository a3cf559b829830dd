package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrApproveDelivererCommandIsNotConstructed = errors.New(
	"ApproveDelivererCommand must be created via NewApproveDelivererCommand constructor",
)

// ApproveDelivererCommand grants or revokes approval. Revoking also takes the deliverer offline.
type ApproveDelivererCommand struct {
	delivererID kernel.UUID
	approved    bool

	guard guard.ConstructorGuard
}

func NewApproveDelivererCommand(actor kernel.Actor, delivererID kernel.UUID, approved bool) (ApproveDelivererCommand, error) {
	if !actor.IsAdmin() {
		return ApproveDelivererCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "approve deliverers")
	}
	if err := delivererID.Validate(); err != nil {
		return ApproveDelivererCommand{}, err
	}

	return ApproveDelivererCommand{
		delivererID: delivererID,
		approved:    approved,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveDelivererCommand) Validate() error {
	return c.guard.Validate(ErrApproveDelivererCommandIsNotConstructed)
}

func (c ApproveDelivererCommand) DelivererID() kernel.UUID { return c.delivererID }
func (c ApproveDelivererCommand) Approved() bool           { return c.approved }
