package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/domain/services"
)

// UpdateLocationResult is the stored sample and the breadcrumbs derived from it.
type UpdateLocationResult struct {
	Location    *tracking.DelivererLocation
	Breadcrumbs []*tracking.OrderTracking
}

// UpdateLocationCommandHandler replaces the deliverer's active position and fans it out to
// every order the deliverer is carrying, all in one transaction.
//
// Example:
//
//	cmd, _ := NewUpdateLocationCommand(delivererActor, -23.55, -46.63, tracking.Telemetry{})
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // NotEligible when offline or unapproved
//	}
//	fmt.Printf("%d orders tracked", len(result.Breadcrumbs))
type UpdateLocationCommandHandler struct {
	uowFactory UoWFactory
	builder    services.BreadcrumbBuilder
}

func NewUpdateLocationCommandHandler(uowFactory UoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewBreadcrumbBuilder(),
	}
}

func (h UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (UpdateLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateLocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateLocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// the profile lock serializes updates from one deliverer so ReplaceActive never races itself
	d, err := uow.DelivererRepository().GetForUpdate(ctx, cmd.DelivererID())
	if err != nil {
		return UpdateLocationResult{}, err
	}
	if err = d.ValidateEligible(); err != nil {
		return UpdateLocationResult{}, err
	}

	now := time.Now().UTC()
	sample, err := tracking.NewDelivererLocation(kernel.NewUUID(), d.ID(), cmd.Location(), cmd.Telemetry(), now)
	if err != nil {
		return UpdateLocationResult{}, err
	}

	if err = uow.LocationRepository().ReplaceActive(ctx, sample); err != nil {
		return UpdateLocationResult{}, err
	}

	inFlight, err := uow.OrderRepository().GetAllDeliveringByDeliverer(ctx, d.ID())
	if err != nil {
		return UpdateLocationResult{}, err
	}

	crumbs, err := h.builder.Build(sample, inFlight, now)
	if err != nil {
		return UpdateLocationResult{}, err
	}

	if len(crumbs) > 0 {
		if err = uow.TrackingRepository().AddAll(ctx, crumbs); err != nil {
			return UpdateLocationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateLocationResult{}, err
	}

	return UpdateLocationResult{Location: sample, Breadcrumbs: crumbs}, nil
}
