package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestDeliveryFee(t *testing.T) {
	settings := pricing.DefaultPlatformSettings()
	activeCity, err := pricing.NewAllowedCity(kernel.NewUUID(), "Campinas", "SP", true, ptr(3), ptr(40))
	require.NoError(t, err)
	inactiveCity, err := pricing.NewAllowedCity(kernel.NewUUID(), "Santos", "SP", false, ptr(3), ptr(40))
	require.NoError(t, err)

	tests := []struct {
		name      string
		distance  float64
		city      *pricing.AllowedCity
		wantRate  float64
		wantFinal float64
	}{
		{name: "short distance is raised to the minimum", distance: 1, wantRate: 2, wantFinal: 5},
		{name: "zero distance is the minimum", distance: 0, wantRate: 2, wantFinal: 5},
		{name: "platform rate above minimum", distance: 4, wantRate: 2, wantFinal: 8},
		{name: "active city overrides rate", distance: 4, city: activeCity, wantRate: 3, wantFinal: 12},
		{name: "inactive city falls back to platform", distance: 4, city: inactiveCity, wantRate: 2, wantFinal: 8},
		{name: "maximum distance is allowed", distance: 10, wantRate: 2, wantFinal: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := services.DeliveryFee(tt.distance, tt.city, settings)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantRate, quote.FeePerKm, 1e-9)
			assert.InDelta(t, tt.wantFinal, quote.FinalFee, 1e-9)
			assert.InDelta(t, tt.distance*tt.wantRate, quote.CalculatedFee, 1e-9)
			assert.InDelta(t, settings.MinimumDeliveryFee, quote.MinimumFee, 1e-9)
		})
	}

	t.Run("12 km over a 10 km maximum fails with distance exceeded", func(t *testing.T) {
		_, err := services.DeliveryFee(12, nil, settings)

		require.ErrorIs(t, err, services.ErrDistanceExceeded)
		var exceeded *services.DistanceExceededError
		require.ErrorAs(t, err, &exceeded)
		assert.InDelta(t, 10.0, exceeded.MaxDistanceKm, 1e-9)
	})

	t.Run("negative distance is rejected", func(t *testing.T) {
		_, err := services.DeliveryFee(-0.5, nil, settings)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDeliveryFee_MonotonicAndBounded(t *testing.T) {
	settings := pricing.DefaultPlatformSettings()
	previous := 0.0
	for d := 0.0; d <= settings.MaximumDeliveryDistance; d += 0.25 {
		quote, err := services.DeliveryFee(d, nil, settings)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, quote.FinalFee, settings.MinimumDeliveryFee)
		assert.GreaterOrEqual(t, quote.FinalFee, previous)
		previous = quote.FinalFee
	}
}

func TestMinimumOrderValue(t *testing.T) {
	settings := pricing.DefaultPlatformSettings()
	city, err := pricing.NewAllowedCity(kernel.NewUUID(), "Campinas", "SP", true, nil, ptr(45))
	require.NoError(t, err)

	assert.InDelta(t, 45.0, services.MinimumOrderValue(city, settings), 1e-9)
	assert.InDelta(t, 30.0, services.MinimumOrderValue(nil, settings), 1e-9)
}

func TestEstimateDelivery(t *testing.T) {
	pickup := mustLocation(t, -23.55, -46.63)
	dropoff := mustLocation(t, -23.60, -46.70)

	estimate, err := services.EstimateDelivery(pickup, dropoff, testNow)

	require.NoError(t, err)
	assert.InDelta(t, 9.05, estimate.DistanceKm, 0.05)
	assert.InDelta(t, 5+2.5*estimate.DistanceKm, estimate.EstimatedPrice, 0.02)
	assert.InDelta(t, 22, estimate.EstimatedMinutes, 1)
	assert.True(t, estimate.EstimatedArrival.After(testNow))

	same, err := services.EstimateDelivery(pickup, pickup, testNow)
	require.NoError(t, err)
	assert.Zero(t, same.DistanceKm)
	assert.Zero(t, same.EstimatedMinutes)
	assert.InDelta(t, services.DeliveryBasePrice, same.EstimatedPrice, 1e-9)
}
