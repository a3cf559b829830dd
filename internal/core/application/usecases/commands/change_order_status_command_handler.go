package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a role-gated transition.
//
// Reaching delivered counts the delivery on the deliverer's profile in the same
// transaction, so the counter moves exactly once per order. The status change is
// written to the outbox before commit.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(orderID, storeActor, order.Accepted, "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTransitionIsInvalid):
//	    // the role may not take this edge
//	case errors.Is(err, errs.ErrActionIsForbidden):
//	    // not the owner or the assignee
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	topics     EventTopics
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, topics EventTopics) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		topics:     topics,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.Transition(cmd.Actor(), cmd.Status(), cmd.Reason(), now); err != nil {
		return err
	}

	if o.Status() == order.Delivered {
		delivererID := o.Deliverer()
		if delivererID == nil {
			return errs.NewStateIsInvalidError("order deliverer", "missing")
		}
		delivererRepo := uow.DelivererRepository()
		d, getErr := delivererRepo.GetForUpdate(ctx, *delivererID)
		if getErr != nil {
			return getErr
		}
		d.RecordDelivery()
		if err = delivererRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = saveOrderEvents(ctx, uow.OutboxRepository(), h.topics.OrderStatusChanged, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
