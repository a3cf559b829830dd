package locationrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/locationrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type LocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *locationrepo.GormLocationRepository
}

func TestLocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryIntegrationTestSuite))
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = locationrepo.NewGormLocationRepository(suite.database.DB, tracker)
}

func (suite *LocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *LocationRepositoryIntegrationTestSuite) TestReplaceActive_KeepsSingleActiveSample() {
	ctx := context.Background()
	delivererID := suite.insertDeliverer()
	speed := 18.0

	first := suite.sample(delivererID, -23.55, -46.63, tracking.Telemetry{})
	second := suite.sample(delivererID, -23.56, -46.64, tracking.Telemetry{SpeedKmh: &speed})
	suite.Require().NoError(suite.repository.ReplaceActive(ctx, first))
	suite.Require().NoError(suite.repository.ReplaceActive(ctx, second))

	active, err := suite.repository.GetActive(ctx, delivererID)
	suite.Require().NoError(err)
	suite.Equal(second.ID(), active.ID())
	suite.Require().NotNil(active.Telemetry().SpeedKmh)
	suite.InDelta(18.0, *active.Telemetry().SpeedKmh, 1e-9)
	suite.Nil(active.Telemetry().HeadingDegrees)

	var total, activeCount int64
	suite.Require().NoError(suite.database.DB.Table("deliverer_locations").
		Where("deliverer_id = ?", delivererID.Bytes()).Count(&total).Error)
	suite.Require().NoError(suite.database.DB.Table("deliverer_locations").
		Where("deliverer_id = ? AND is_active", delivererID.Bytes()).Count(&activeCount).Error)
	suite.EqualValues(2, total)
	suite.EqualValues(1, activeCount)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestReplaceActive_OtherDeliverersUntouched() {
	ctx := context.Background()
	a, b := suite.insertDeliverer(), suite.insertDeliverer()

	suite.Require().NoError(suite.repository.ReplaceActive(ctx, suite.sample(a, 1, 1, tracking.Telemetry{})))
	suite.Require().NoError(suite.repository.ReplaceActive(ctx, suite.sample(b, 2, 2, tracking.Telemetry{})))

	activeA, err := suite.repository.GetActive(ctx, a)
	suite.Require().NoError(err)
	suite.InDelta(1.0, activeA.Location().Latitude(), 1e-9)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetActive_NeverReported_ReturnsNotFound() {
	_, err := suite.repository.GetActive(context.Background(), suite.insertDeliverer())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LocationRepositoryIntegrationTestSuite) insertDeliverer() kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.database.DB.Exec(
		"INSERT INTO deliverers (id, vehicle_type, is_online, is_approved) VALUES (?, 'car', true, true)",
		id.Bytes()).Error)
	return id
}

func (suite *LocationRepositoryIntegrationTestSuite) sample(
	delivererID kernel.UUID,
	lat, lon float64,
	tel tracking.Telemetry,
) *tracking.DelivererLocation {
	loc, err := kernel.NewLocation(lat, lon)
	suite.Require().NoError(err)
	l, err := tracking.NewDelivererLocation(kernel.NewUUID(), delivererID, loc, tel, time.Now().UTC())
	suite.Require().NoError(err)
	return l
}
