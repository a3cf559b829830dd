package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) GetPlatformSettings(ctx context.Context) (pricing.PlatformSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.PlatformSettings), args.Error(1)
}

func (m *MockPricingRepository) GetCity(ctx context.Context, id kernel.UUID) (*pricing.AllowedCity, error) {
	args := m.Called(ctx, id)
	if city := args.Get(0); city != nil {
		return city.(*pricing.AllowedCity), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestEstimateFeeQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("platform rate without city", func(t *testing.T) {
		repo := new(MockPricingRepository)
		repo.On("GetPlatformSettings", ctx).Return(pricing.DefaultPlatformSettings(), nil).Once()

		query, err := queries.NewEstimateFeeQuery(4, nil)
		require.NoError(t, err)
		quote, err := queries.NewEstimateFeeQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.InDelta(t, 8.0, quote.FinalFee, 1e-9)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "GetCity", mock.Anything, mock.Anything)
	})

	t.Run("city rate overrides and minimum applies", func(t *testing.T) {
		rate := 1.0
		cityID := kernel.NewUUID()
		city, err := pricing.NewAllowedCity(cityID, "Santos", "SP", true, &rate, nil)
		require.NoError(t, err)

		repo := new(MockPricingRepository)
		mock.InOrder(
			repo.On("GetPlatformSettings", ctx).Return(pricing.DefaultPlatformSettings(), nil).Once(),
			repo.On("GetCity", ctx, cityID).Return(city, nil).Once(),
		)

		query, err := queries.NewEstimateFeeQuery(3, &cityID)
		require.NoError(t, err)
		quote, err := queries.NewEstimateFeeQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, quote.FeePerKm, 1e-9)
		assert.InDelta(t, 3.0, quote.CalculatedFee, 1e-9)
		assert.InDelta(t, 5.0, quote.FinalFee, 1e-9)
		repo.AssertExpectations(t)
	})

	t.Run("unknown city", func(t *testing.T) {
		cityID := kernel.NewUUID()
		repo := new(MockPricingRepository)
		repo.On("GetPlatformSettings", ctx).Return(pricing.DefaultPlatformSettings(), nil).Once()
		repo.On("GetCity", ctx, cityID).Return(nil, errs.NewObjectNotFoundError("city", cityID.String())).Once()

		query, err := queries.NewEstimateFeeQuery(3, &cityID)
		require.NoError(t, err)
		_, err = queries.NewEstimateFeeQueryHandler(repo).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("beyond maximum distance", func(t *testing.T) {
		repo := new(MockPricingRepository)
		repo.On("GetPlatformSettings", ctx).Return(pricing.DefaultPlatformSettings(), nil).Once()

		query, err := queries.NewEstimateFeeQuery(10.5, nil)
		require.NoError(t, err)
		_, err = queries.NewEstimateFeeQueryHandler(repo).Handle(ctx, query)

		require.ErrorIs(t, err, services.ErrDistanceExceeded)
	})
}

func TestGetOrderLimitsQueryHandler(t *testing.T) {
	ctx := context.Background()
	minimum := 45.0
	cityID := kernel.NewUUID()
	city, err := pricing.NewAllowedCity(cityID, "Campinas", "SP", true, nil, &minimum)
	require.NoError(t, err)

	repo := new(MockPricingRepository)
	repo.On("GetPlatformSettings", ctx).Return(pricing.DefaultPlatformSettings(), nil)
	repo.On("GetCity", ctx, cityID).Return(city, nil)
	handler := queries.NewGetOrderLimitsQueryHandler(repo)

	withCity, err := queries.NewGetOrderLimitsQuery(&cityID)
	require.NoError(t, err)
	limits, err := handler.Handle(ctx, withCity)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, limits.MinimumOrderValue, 1e-9)
	assert.InDelta(t, 10.0, limits.MaximumDeliveryDistance, 1e-9)

	platform, err := queries.NewGetOrderLimitsQuery(nil)
	require.NoError(t, err)
	limits, err = handler.Handle(ctx, platform)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, limits.MinimumOrderValue, 1e-9)
}

func TestEstimateDeliveryQueryHandler(t *testing.T) {
	query, err := queries.NewEstimateDeliveryQuery(mustLocation(t, -23.55, -46.63), mustLocation(t, -23.60, -46.70))
	require.NoError(t, err)

	estimate, err := queries.NewEstimateDeliveryQueryHandler().Handle(context.Background(), query)

	require.NoError(t, err)
	assert.InDelta(t, 9.05, estimate.DistanceKm, 0.1)
	assert.InDelta(t, 5+estimate.DistanceKm*2.5, estimate.EstimatedPrice, 0.05)
	assert.Positive(t, estimate.EstimatedMinutes)
}
