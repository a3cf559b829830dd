package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// ClaimOrderCommandHandler is the dispatch entry point for orders.
//
// Eligibility and state are checked in memory first, then the claim is persisted through
// OrderRepository.Claim, a compare-and-set on "ready and unassigned". When two deliverers
// race, both may pass the in-memory checks but only one conditional write succeeds; the
// other gets errs.ErrObjectIsAlreadyAssigned and its transaction is rolled back.
//
// Example:
//
//	cmd, _ := NewClaimOrderCommand(orderID, delivererActor)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectIsAlreadyAssigned) {
//	    // somebody else got it first
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	topics     EventTopics
}

func NewClaimOrderCommandHandler(uowFactory UoWFactory, topics EventTopics) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		topics:     topics,
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.ClaimOrder(o, d, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, o); err != nil {
		return err
	}

	if err = saveOrderEvents(ctx, uow.OutboxRepository(), h.topics.OrderStatusChanged, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
