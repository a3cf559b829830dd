package commands

import (
	"context"

	"marketplace/internal/core/domain/model/deliverer"
)

type RegisterDelivererCommandHandler struct {
	uowFactory DelivererUoWFactory
}

func NewRegisterDelivererCommandHandler(uowFactory DelivererUoWFactory) RegisterDelivererCommandHandler {
	return RegisterDelivererCommandHandler{uowFactory: uowFactory}
}

// Handle stores an offline, unapproved profile.
func (h RegisterDelivererCommandHandler) Handle(ctx context.Context, cmd RegisterDelivererCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := deliverer.NewDeliverer(cmd.DelivererID(), cmd.VehicleType(), cmd.VehiclePlate())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DelivererRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
