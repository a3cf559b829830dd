package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/errs"
)

// ChangeDeliveryRequestStatusCommandHandler applies the delivery request table and counts
// the delivery on the deliverer when the request reaches delivered.
type ChangeDeliveryRequestStatusCommandHandler struct {
	uowFactory UoWFactory
	topics     EventTopics
}

func NewChangeDeliveryRequestStatusCommandHandler(
	uowFactory UoWFactory,
	topics EventTopics,
) ChangeDeliveryRequestStatusCommandHandler {
	return ChangeDeliveryRequestStatusCommandHandler{
		uowFactory: uowFactory,
		topics:     topics,
	}
}

func (h ChangeDeliveryRequestStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDeliveryRequestStatusCommand,
) error {
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

	requestRepo := uow.DeliveryRequestRepository()

	r, err := requestRepo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = r.Transition(cmd.Actor(), cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if r.Status() == request.Delivered {
		delivererID := r.Deliverer()
		if delivererID == nil {
			return errs.NewStateIsInvalidError("delivery request deliverer", "missing")
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

	if err = requestRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = saveRequestEvents(ctx, uow.OutboxRepository(), h.topics.DeliveryRequestStatusChanged, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
