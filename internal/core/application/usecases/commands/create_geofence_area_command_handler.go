package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/geofence"
)

type CreateGeofenceAreaCommandHandler struct {
	uowFactory GeofenceUoWFactory
}

func NewCreateGeofenceAreaCommandHandler(uowFactory GeofenceUoWFactory) CreateGeofenceAreaCommandHandler {
	return CreateGeofenceAreaCommandHandler{uowFactory: uowFactory}
}

func (h CreateGeofenceAreaCommandHandler) Handle(ctx context.Context, cmd CreateGeofenceAreaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	area, err := geofence.NewArea(cmd.AreaID(), cmd.Name(), cmd.Center(), cmd.RadiusMeters(), cmd.AreaType(),
		true, time.Now().UTC())
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

	if err = uow.GeofenceRepository().Add(ctx, area); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
