package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRelayer struct{ mock.Mock }

func (m *MockOutboxRelayer) Handle(ctx context.Context, cmd commands.PublishOutboxMessagesCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockProblematicOrdersReader struct{ mock.Mock }

func (m *MockProblematicOrdersReader) Handle(
	ctx context.Context,
	query queries.GetProblematicOrdersQuery,
) ([]queries.ProblematicOrder, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ProblematicOrder), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestEventRelayJob_Run(t *testing.T) {
	t.Run("relays with the configured batch size", func(t *testing.T) {
		ctx := t.Context()
		handler := new(MockOutboxRelayer)
		handler.On("Handle", ctx, mock.MatchedBy(func(cmd commands.PublishOutboxMessagesCommand) bool {
			return cmd.BatchSize() == 25
		})).Return(3, nil).Once()
		logger, buf := bufferLogger()

		jobs.NewEventRelayJob(handler, 25, logger).Run(ctx)

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Outbox messages relayed")
		assert.Contains(t, buf.String(), `"component":"event_relay_job"`)
	})

	t.Run("publish failure is logged", func(t *testing.T) {
		ctx := t.Context()
		handler := new(MockOutboxRelayer)
		handler.On("Handle", ctx, mock.Anything).Return(0, errors.New("broker down")).Once()
		logger, buf := bufferLogger()

		jobs.NewEventRelayJob(handler, 0, logger).Run(ctx)

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "broker down")
	})

	t.Run("invalid batch size never reaches the handler", func(t *testing.T) {
		handler := new(MockOutboxRelayer)
		logger, buf := bufferLogger()

		jobs.NewEventRelayJob(handler, -5, logger).Run(t.Context())

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		assert.Contains(t, buf.String(), "misconfigured")
	})
}

func TestProblematicOrdersJob_Run(t *testing.T) {
	t.Run("warns once per stuck order", func(t *testing.T) {
		ctx := t.Context()
		deliverer := kernel.NewUUID()
		stuck := []queries.ProblematicOrder{
			{
				ID: kernel.NewUUID(), Number: "100001", StoreID: kernel.NewUUID(), Status: order.Ready,
				Kind: services.ProblemStuckReady, MinutesElapsed: 45, UpdatedAt: time.Now().UTC(),
			},
			{
				ID: kernel.NewUUID(), Number: "100002", StoreID: kernel.NewUUID(), DelivererID: &deliverer,
				Status: order.Delivering, Kind: services.ProblemStuckDelivering, MinutesElapsed: 75,
				UpdatedAt: time.Now().UTC(),
			},
		}
		handler := new(MockProblematicOrdersReader)
		handler.On("Handle", ctx, mock.AnythingOfType("queries.GetProblematicOrdersQuery")).Return(stuck, nil).Once()
		logger, buf := bufferLogger()

		reported := jobs.NewProblematicOrdersJob(handler, logger).Run(ctx)

		require.Equal(t, 2, reported)
		handler.AssertExpectations(t)
		assert.Equal(t, 2, strings.Count(buf.String(), "Order needs attention"))
		assert.Contains(t, buf.String(), `"kind":"stuck_delivering"`)
		assert.Contains(t, buf.String(), deliverer.String())
	})

	t.Run("query failure is logged", func(t *testing.T) {
		ctx := t.Context()
		handler := new(MockProblematicOrdersReader)
		handler.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db gone")).Once()
		logger, buf := bufferLogger()

		reported := jobs.NewProblematicOrdersJob(handler, logger).Run(ctx)

		assert.Zero(t, reported)
		assert.Contains(t, buf.String(), "db gone")
	})
}

func TestJobManager_StartStop(t *testing.T) {
	relay := new(MockOutboxRelayer)
	relay.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	reader := new(MockProblematicOrdersReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return([]queries.ProblematicOrder{}, nil).Maybe()
	logger, buf := bufferLogger()

	manager := jobs.NewJobManager(relay, 10, reader, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Event relay job started")
	assert.Contains(t, buf.String(), "Problematic orders job stopped")
}
