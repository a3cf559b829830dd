package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumbBuilder_Build(t *testing.T) {
	builder := services.NewBreadcrumbBuilder()
	delivererID := kernel.NewUUID()
	sample := newSample(t, delivererID, -23.55, -46.63)

	t.Run("one breadcrumb per in-flight order", func(t *testing.T) {
		first := newOrderAt(t, order.Delivering, &delivererID, mustLocation(t, -23.60, -46.70), testNow)
		second := newOrderAt(t, order.Delivering, &delivererID, mustLocation(t, -23.56, -46.64), testNow)

		crumbs, err := builder.Build(sample, []*order.Order{first, second}, testNow)

		require.NoError(t, err)
		require.Len(t, crumbs, 2)
		assert.True(t, crumbs[0].OrderID().IsEqual(first.ID()))
		assert.Equal(t, tracking.StageInTransit, crumbs[0].Stage())
		assert.InDelta(t, 9.05, crumbs[0].DistanceRemainingKm(), 0.1)
		assert.WithinDuration(t, testNow.Add(22*time.Minute), crumbs[0].EstimatedArrival(), time.Minute)
		assert.True(t, crumbs[1].OrderID().IsEqual(second.ID()))
		assert.Less(t, crumbs[1].DistanceRemainingKm(), crumbs[0].DistanceRemainingKm())
	})

	t.Run("orders of other deliverers or other states are skipped", func(t *testing.T) {
		other := kernel.NewUUID()
		foreign := newOrderAt(t, order.Delivering, &other, mustLocation(t, -23.60, -46.70), testNow)
		delivered := newOrderAt(t, order.Delivered, &delivererID, mustLocation(t, -23.60, -46.70), testNow)

		crumbs, err := builder.Build(sample, []*order.Order{foreign, delivered}, testNow)

		require.NoError(t, err)
		assert.Empty(t, crumbs)
	})

	t.Run("no orders is not an error", func(t *testing.T) {
		crumbs, err := builder.Build(sample, nil, testNow)

		require.NoError(t, err)
		assert.Empty(t, crumbs)
	})

	t.Run("arrived deliverer has zero distance and eta now", func(t *testing.T) {
		here := newOrderAt(t, order.Delivering, &delivererID, mustLocation(t, -23.55, -46.63), testNow)

		crumbs, err := builder.Build(sample, []*order.Order{here}, testNow)

		require.NoError(t, err)
		require.Len(t, crumbs, 1)
		assert.Zero(t, crumbs[0].DistanceRemainingKm())
		assert.Equal(t, testNow, crumbs[0].EstimatedArrival())
	})
}
