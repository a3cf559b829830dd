package trackingrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/trackingrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type TrackingRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *trackingrepo.GormTrackingRepository
	tracker    *MockAggregateTracker
}

func TestTrackingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingRepositoryIntegrationTestSuite))
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = trackingrepo.NewGormTrackingRepository(suite.database.DB, suite.tracker)
}

func (suite *TrackingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestAddAll_AppendsEveryCrumb() {
	ctx := context.Background()
	delivererID := suite.insertDeliverer()
	orderA := suite.insertOrder(delivererID, "810001")
	orderB := suite.insertOrder(delivererID, "810002")

	crumbs := []*tracking.OrderTracking{suite.crumb(orderA, delivererID), suite.crumb(orderB, delivererID)}
	for _, c := range crumbs {
		suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	}

	suite.Require().NoError(suite.repository.AddAll(ctx, crumbs))

	var count int64
	suite.Require().NoError(suite.database.DB.Table("order_tracking").Count(&count).Error)
	suite.EqualValues(2, count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestAddAll_EmptyIsNoop() {
	suite.Require().NoError(suite.repository.AddAll(context.Background(), nil))
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *TrackingRepositoryIntegrationTestSuite) insertDeliverer() kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.database.DB.Exec(
		"INSERT INTO deliverers (id, vehicle_type) VALUES (?, 'motorcycle')", id.Bytes()).Error)
	return id
}

func (suite *TrackingRepositoryIntegrationTestSuite) insertOrder(delivererID kernel.UUID, number string) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.database.DB.Exec(`INSERT INTO orders
		(id, number, client_id, store_id, deliverer_id, status, total_amount, delivery_fee, payment_method,
		 payment_status, street, city, state, zip_code, latitude, longitude, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'delivering', 40, 5, 'pix', 'pending', 'Rua A', 'São Paulo', 'SP', '01000-000',
		 -23.55, -46.63, now(), now())`,
		id.Bytes(), number, kernel.NewUUID().Bytes(), kernel.NewUUID().Bytes(), delivererID.Bytes()).Error)
	return id
}

func (suite *TrackingRepositoryIntegrationTestSuite) crumb(orderID, delivererID kernel.UUID) *tracking.OrderTracking {
	loc, err := kernel.NewLocation(-23.55, -46.63)
	suite.Require().NoError(err)
	now := time.Now().UTC()
	c, err := tracking.RestoreOrderTracking(tracking.TrackingSnapshot{
		ID:                  kernel.NewUUID(),
		OrderID:             orderID,
		DelivererID:         delivererID,
		Location:            loc,
		Stage:               tracking.StageInTransit,
		EstimatedArrival:    now.Add(5 * time.Minute),
		DistanceRemainingKm: 2.1,
		CreatedAt:           now,
	})
	suite.Require().NoError(err)
	return c
}
