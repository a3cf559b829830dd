package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// EstimateFeeQueryHandler reads pricing through the repository port so the quote and the
// checkout share one source of settings.
type EstimateFeeQueryHandler struct {
	pricing ports.PricingRepository
}

func NewEstimateFeeQueryHandler(pricing ports.PricingRepository) EstimateFeeQueryHandler {
	return EstimateFeeQueryHandler{pricing: pricing}
}

// Handle fails with services.DistanceExceededError beyond the maximum delivery distance
// and with errs.ErrObjectNotFound for an unknown city.
func (h EstimateFeeQueryHandler) Handle(ctx context.Context, query EstimateFeeQuery) (services.FeeQuote, error) {
	if err := query.Validate(); err != nil {
		return services.FeeQuote{}, err
	}

	settings, city, err := loadPricing(ctx, h.pricing, query.CityID())
	if err != nil {
		return services.FeeQuote{}, err
	}

	return services.DeliveryFee(query.DistanceKm(), city, settings)
}

type GetOrderLimitsQueryHandler struct {
	pricing ports.PricingRepository
}

func NewGetOrderLimitsQueryHandler(pricing ports.PricingRepository) GetOrderLimitsQueryHandler {
	return GetOrderLimitsQueryHandler{pricing: pricing}
}

func (h GetOrderLimitsQueryHandler) Handle(ctx context.Context, query GetOrderLimitsQuery) (OrderLimits, error) {
	if err := query.Validate(); err != nil {
		return OrderLimits{}, err
	}

	settings, city, err := loadPricing(ctx, h.pricing, query.CityID())
	if err != nil {
		return OrderLimits{}, err
	}

	return OrderLimits{
		MinimumOrderValue:       services.MinimumOrderValue(city, settings),
		MaximumDeliveryDistance: settings.MaximumDeliveryDistance,
	}, nil
}

func loadPricing(
	ctx context.Context,
	repo ports.PricingRepository,
	cityID *kernel.UUID,
) (pricing.PlatformSettings, *pricing.AllowedCity, error) {
	settings, err := repo.GetPlatformSettings(ctx)
	if err != nil {
		return pricing.PlatformSettings{}, nil, err
	}
	if cityID == nil {
		return settings, nil, nil
	}
	city, err := repo.GetCity(ctx, *cityID)
	if err != nil {
		return pricing.PlatformSettings{}, nil, err
	}
	return settings, city, nil
}

type EstimateDeliveryQueryHandler struct{}

func NewEstimateDeliveryQueryHandler() EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{}
}

func (h EstimateDeliveryQueryHandler) Handle(
	_ context.Context,
	query EstimateDeliveryQuery,
) (services.DeliveryEstimate, error) {
	if err := query.Validate(); err != nil {
		return services.DeliveryEstimate{}, err
	}
	return services.EstimateDelivery(query.Pickup(), query.Dropoff(), time.Now().UTC())
}
