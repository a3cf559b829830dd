package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func newOrderAt(t *testing.T, status order.Status, delivererID *kernel.UUID, dest kernel.Location, updatedAt time.Time) *order.Order {
	t.Helper()
	addr, err := order.NewDeliveryAddress("Rua Vergueiro, 100", "São Paulo", "SP", "01504-000", dest)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:            kernel.NewUUID(),
		Number:        order.NewOrderNumber(),
		ClientID:      kernel.NewUUID(),
		StoreID:       kernel.NewUUID(),
		DelivererID:   delivererID,
		Status:        status,
		TotalAmount:   50,
		DeliveryFee:   6,
		PaymentMethod: kernel.PaymentMethodPix,
		PaymentStatus: order.PaymentStatusPaid,
		Address:       addr,
		CreatedAt:     updatedAt,
		UpdatedAt:     updatedAt,
	})
	require.NoError(t, err)
	return o
}

func newDeliverer(t *testing.T, online, approved bool) *deliverer.Deliverer {
	t.Helper()
	d, err := deliverer.RestoreDeliverer(kernel.NewUUID(), deliverer.VehicleMotorcycle, "ABC1D23", online, approved, 4.9, 3)
	require.NoError(t, err)
	return d
}

func newSample(t *testing.T, delivererID kernel.UUID, lat, lon float64) *tracking.DelivererLocation {
	t.Helper()
	l, err := tracking.NewDelivererLocation(kernel.NewUUID(), delivererID, mustLocation(t, lat, lon), tracking.Telemetry{}, testNow)
	require.NoError(t, err)
	return l
}
