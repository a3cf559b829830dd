package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllDeliveringByDeliverer(
	ctx context.Context,
	delivererID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingByStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *request.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Update(ctx context.Context, r *request.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Claim(ctx context.Context, r *request.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.DeliveryRequest), args.Error(1)
}

func (m *MockDeliveryRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*request.DeliveryRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.DeliveryRequest), args.Error(1)
}

type MockDelivererRepository struct{ mock.Mock }

func (m *MockDelivererRepository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelivererRepository) Update(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelivererRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

func (m *MockDelivererRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) ReplaceActive(ctx context.Context, l *tracking.DelivererLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) GetActive(
	ctx context.Context,
	delivererID kernel.UUID,
) (*tracking.DelivererLocation, error) {
	args := m.Called(ctx, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.DelivererLocation), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) AddAll(ctx context.Context, crumbs []*tracking.OrderTracking) error {
	args := m.Called(ctx, crumbs)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...outbox.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockPricingRepository struct{ mock.Mock }

func (m *MockPricingRepository) GetPlatformSettings(ctx context.Context) (pricing.PlatformSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.PlatformSettings), args.Error(1)
}

func (m *MockPricingRepository) GetCity(ctx context.Context, id kernel.UUID) (*pricing.AllowedCity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.AllowedCity), args.Error(1)
}

type MockGeofenceRepository struct{ mock.Mock }

func (m *MockGeofenceRepository) Add(ctx context.Context, area *geofence.Area) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

func (m *MockUoW) DelivererRepository() ports.DelivererRepository {
	args := m.Called()
	return args.Get(0).(ports.DelivererRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func (m *MockUoW) PricingRepository() ports.PricingRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRepository)
}

func (m *MockUoW) GeofenceRepository() ports.GeofenceRepository {
	args := m.Called()
	return args.Get(0).(ports.GeofenceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDelivererUoWFactory struct{ mock.Mock }

func (m *MockDelivererUoWFactory) Create() commands.DelivererUoW {
	args := m.Called()
	return args.Get(0).(commands.DelivererUoW)
}

type MockGeofenceUoWFactory struct{ mock.Mock }

func (m *MockGeofenceUoWFactory) Create() commands.GeofenceUoW {
	args := m.Called()
	return args.Get(0).(commands.GeofenceUoW)
}

func testLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	addr, err := order.NewDeliveryAddress("Av. Paulista, 1000", "São Paulo", "SP", "01310-100",
		testLocation(t, -23.561, -46.656))
	require.NoError(t, err)
	return addr
}

func testOrder(t *testing.T, storeID kernel.UUID, status order.Status, delivererID *kernel.UUID) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:            kernel.NewUUID(),
		Number:        "123456",
		ClientID:      kernel.NewUUID(),
		StoreID:       storeID,
		DelivererID:   delivererID,
		Status:        status,
		TotalAmount:   58.9,
		DeliveryFee:   7.5,
		PaymentMethod: kernel.PaymentMethodPix,
		PaymentStatus: order.PaymentStatusPending,
		Address:       testAddress(t),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	return o
}

func testRequest(t *testing.T, clientID kernel.UUID, status request.Status, delivererID *kernel.UUID) *request.DeliveryRequest {
	t.Helper()
	now := time.Now().UTC()
	r, err := request.RestoreDeliveryRequest(request.Snapshot{
		ID:              kernel.NewUUID(),
		ClientID:        clientID,
		DelivererID:     delivererID,
		Pickup:          request.Endpoint{Address: "Rua Augusta, 500"},
		Dropoff:         request.Endpoint{Address: "Rua Oscar Freire, 900"},
		ItemDescription: "documents",
		Estimate:        request.Estimate{Price: 5, Minutes: 30},
		PaymentMethod:   kernel.PaymentMethodCash,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return r
}

func testDeliverer(t *testing.T, id kernel.UUID, online, approved bool) *deliverer.Deliverer {
	t.Helper()
	d, err := deliverer.RestoreDeliverer(id, deliverer.VehicleMotorcycle, "ABC1D23", online, approved, 5, 0)
	require.NoError(t, err)
	return d
}

func ptr(id kernel.UUID) *kernel.UUID {
	return &id
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...outbox.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}
