package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// ClaimDeliveryRequestCommandHandler mirrors ClaimOrderCommandHandler for delivery requests.
type ClaimDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	topics     EventTopics
}

func NewClaimDeliveryRequestCommandHandler(uowFactory UoWFactory, topics EventTopics) ClaimDeliveryRequestCommandHandler {
	return ClaimDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		topics:     topics,
	}
}

func (h ClaimDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd ClaimDeliveryRequestCommand) error {
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
	requestRepo := uow.DeliveryRequestRepository()

	d, err := delivererRepo.Get(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	r, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.ClaimRequest(r, d, time.Now().UTC()); err != nil {
		return err
	}

	if err = requestRepo.Claim(ctx, r); err != nil {
		return err
	}

	if err = saveRequestEvents(ctx, uow.OutboxRepository(), h.topics.DeliveryRequestStatusChanged, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
