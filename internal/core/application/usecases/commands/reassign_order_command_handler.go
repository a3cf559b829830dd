package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// ReassignOrderCommandHandler overwrites the assignment of an order that has not left the store.
type ReassignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

func NewReassignOrderCommandHandler(uowFactory UoWFactory) ReassignOrderCommandHandler {
	return ReassignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

func (h ReassignOrderCommandHandler) Handle(ctx context.Context, cmd ReassignOrderCommand) error {
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

	delivererRepo := uow.DelivererRepository()
	orderRepo := uow.OrderRepository()

	d, err := delivererRepo.Get(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Reassign(o, d, cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
