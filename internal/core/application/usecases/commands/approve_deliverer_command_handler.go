package commands

import (
	"context"
)

type ApproveDelivererCommandHandler struct {
	uowFactory DelivererUoWFactory
}

func NewApproveDelivererCommandHandler(uowFactory DelivererUoWFactory) ApproveDelivererCommandHandler {
	return ApproveDelivererCommandHandler{uowFactory: uowFactory}
}

func (h ApproveDelivererCommandHandler) Handle(ctx context.Context, cmd ApproveDelivererCommand) error {
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

	if cmd.Approved() {
		d.Approve()
	} else {
		d.Revoke()
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
