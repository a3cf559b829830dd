package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/core/domain/services"
)

// DefaultRequestMinutes is quoted when the request has no coordinates to measure.
const DefaultRequestMinutes = 30

// CreateDeliveryRequestCommandHandler quotes and stores a pending delivery request.
// With both coordinates the quote comes from services.EstimateDelivery; otherwise it is the
// platform minimum fee and DefaultRequestMinutes.
type CreateDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateDeliveryRequestCommandHandler(uowFactory UoWFactory) CreateDeliveryRequestCommandHandler {
	return CreateDeliveryRequestCommandHandler{uowFactory: uowFactory}
}

func (h CreateDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryRequestCommand,
) (request.Estimate, error) {
	if err := cmd.Validate(); err != nil {
		return request.Estimate{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return request.Estimate{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	estimate, err := h.estimate(ctx, uow, cmd, now)
	if err != nil {
		return request.Estimate{}, err
	}

	r, err := request.NewDeliveryRequest(
		cmd.RequestID(),
		cmd.ClientID(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.ItemDescription(),
		estimate,
		cmd.PaymentMethod(),
		now,
	)
	if err != nil {
		return request.Estimate{}, err
	}

	if err = uow.DeliveryRequestRepository().Add(ctx, r); err != nil {
		return request.Estimate{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return request.Estimate{}, err
	}

	return estimate, nil
}

func (h CreateDeliveryRequestCommandHandler) estimate(
	ctx context.Context,
	uow UoW,
	cmd CreateDeliveryRequestCommand,
	now time.Time,
) (request.Estimate, error) {
	pickup, dropoff := cmd.Pickup().Location, cmd.Dropoff().Location
	if pickup != nil && dropoff != nil {
		quote, err := services.EstimateDelivery(*pickup, *dropoff, now)
		if err != nil {
			return request.Estimate{}, err
		}
		return request.Estimate{Price: quote.EstimatedPrice, Minutes: quote.EstimatedMinutes}, nil
	}

	settings, err := uow.PricingRepository().GetPlatformSettings(ctx)
	if err != nil {
		return request.Estimate{}, err
	}
	return request.Estimate{Price: settings.MinimumDeliveryFee, Minutes: DefaultRequestMinutes}, nil
}
