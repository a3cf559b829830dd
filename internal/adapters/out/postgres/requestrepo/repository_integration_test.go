package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/requestrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
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

type DeliveryRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *requestrepo.GormDeliveryRequestRepository
}

func TestDeliveryRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRequestRepositoryIntegrationTestSuite))
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = requestrepo.NewGormDeliveryRequestRepository(suite.database.DB, tracker)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestAdd_ThenGet_KeepsOptionalCoordinates() {
	ctx := context.Background()
	r := suite.newRequest(true)

	suite.Require().NoError(suite.repository.Add(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Pending, got.Status())
	suite.Equal("Rua Augusta, 500", got.Pickup().Address)
	suite.Require().NotNil(got.Pickup().Location)
	suite.InDelta(-23.553, got.Pickup().Location.Latitude(), 1e-9)
	suite.Nil(got.Dropoff().Location)
	suite.InDelta(12.5, got.Estimate().Price, 1e-9)
	suite.Equal(30, got.Estimate().Minutes)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestClaim_SecondClaimLoses() {
	ctx := context.Background()
	r := suite.newRequest(false)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	winner := suite.insertDeliverer()
	first, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(first.Claim(winner, time.Now().UTC()))
	suite.Require().NoError(second.Claim(suite.insertDeliverer(), time.Now().UTC()))

	suite.Require().NoError(suite.repository.Claim(ctx, first))
	suite.Require().ErrorIs(suite.repository.Claim(ctx, second), errs.ErrObjectIsAlreadyAssigned)

	stored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Accepted, stored.Status())
	suite.Equal(winner, *stored.Deliverer())
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	r := suite.newRequest(false)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	client := kernel.Actor{ID: r.ClientID(), Role: kernel.RoleClient}
	suite.Require().NoError(r.Transition(client, request.Cancelled, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Cancelled, got.Status())
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestClaim_StaleCopyOfCancelledRequest() {
	ctx := context.Background()
	r := suite.newRequest(false)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	stale, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	client := kernel.Actor{ID: r.ClientID(), Role: kernel.RoleClient}
	suite.Require().NoError(r.Transition(client, request.Cancelled, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	suite.Require().NoError(stale.Claim(suite.insertDeliverer(), time.Now().UTC()))
	err = suite.repository.Claim(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrStateIsInvalid)
	suite.NotErrorIs(err, errs.ErrObjectIsAlreadyAssigned)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) insertDeliverer() kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.database.DB.Exec(
		"INSERT INTO deliverers (id, vehicle_type, is_online, is_approved) VALUES (?, 'bicycle', true, true)",
		id.Bytes()).Error)
	return id
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) newRequest(withPickup bool) *request.DeliveryRequest {
	pickup := request.Endpoint{Address: "Rua Augusta, 500"}
	if withPickup {
		loc, err := kernel.NewLocation(-23.553, -46.657)
		suite.Require().NoError(err)
		pickup.Location = &loc
	}

	r, err := request.NewDeliveryRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pickup,
		request.Endpoint{Address: "Rua Oscar Freire, 10"},
		"documents",
		request.Estimate{Price: 12.5, Minutes: 30},
		kernel.PaymentMethodCash,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return r
}
