package commands

import (
	"context"
)

type SetDelivererAvailabilityCommandHandler struct {
	uowFactory DelivererUoWFactory
}

func NewSetDelivererAvailabilityCommandHandler(uowFactory DelivererUoWFactory) SetDelivererAvailabilityCommandHandler {
	return SetDelivererAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h SetDelivererAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDelivererAvailabilityCommand) error {
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

	repo := uow.DelivererRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	if cmd.Online() {
		d.GoOnline()
	} else {
		d.GoOffline()
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
