package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGeofenceAreaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateGeofenceAreaCommand(actorOf(kernel.RoleAdmin), areaID, "Centro",
		testLocation(t, -23.55, -46.63), 2500, "")
	require.NoError(t, err)

	repo := new(MockGeofenceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GeofenceRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*geofence.Area")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGeofenceUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateGeofenceAreaCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	added := repo.Calls[0].Arguments[1].(*geofence.Area)
	assert.Equal(t, areaID, added.ID())
	assert.Equal(t, geofence.AreaDeliveryZone, added.Type())
	assert.True(t, added.IsActive())
	assert.False(t, added.CreatedAt().IsZero())
	uow.AssertExpectations(t)
}

func TestCreateGeofenceAreaCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateGeofenceAreaCommand(actorOf(kernel.RoleAdmin), kernel.NewUUID(), "Loja",
		testLocation(t, -23.55, -46.63), 150, geofence.AreaStore)
	require.NoError(t, err)

	repo := new(MockGeofenceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GeofenceRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGeofenceUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateGeofenceAreaCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateGeofenceAreaCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockGeofenceUoWFactory)

	err := commands.NewCreateGeofenceAreaCommandHandler(factory).Handle(t.Context(), commands.CreateGeofenceAreaCommand{})

	require.ErrorIs(t, err, commands.ErrCreateGeofenceAreaCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
