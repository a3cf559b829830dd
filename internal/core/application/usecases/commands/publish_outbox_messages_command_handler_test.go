package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMessages(t *testing.T, n int) []outbox.Message {
	t.Helper()
	messages := make([]outbox.Message, 0, n)
	for range n {
		msg, err := outbox.NewMessage("order.status.changed", kernel.NewUUID().String(),
			map[string]string{"to": "delivering"}, time.Now().UTC())
		require.NoError(t, err)
		messages = append(messages, msg)
	}
	return messages
}

func TestNewPublishOutboxMessagesCommand(t *testing.T) {
	cmd, err := commands.NewPublishOutboxMessagesCommand(0)
	require.NoError(t, err)
	assert.Equal(t, commands.DefaultOutboxBatchSize, cmd.BatchSize())

	_, err = commands.NewPublishOutboxMessagesCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewPublishOutboxMessagesCommand(commands.MaxOutboxBatchSize + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.PublishOutboxMessagesCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrPublishOutboxMessagesCommandIsNotConstructed)
}

func TestPublishOutboxMessagesCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPublishOutboxMessagesCommand(10)
	require.NoError(t, err)
	messages := testMessages(t, 2)
	ids := []kernel.UUID{messages[0].ID, messages[1].ID}

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetUnpublished", ctx, 10).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages).Return(nil).Once(),
		outboxRepo.On("MarkPublished", ctx, ids, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	published, err := commands.NewPublishOutboxMessagesCommandHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	outboxRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPublishOutboxMessagesCommandHandler_Handle_NothingToPublish(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPublishOutboxMessagesCommand(0)
	require.NoError(t, err)

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outboxRepo).Once()
	outboxRepo.On("GetUnpublished", ctx, commands.DefaultOutboxBatchSize).Return([]outbox.Message{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	published, err := commands.NewPublishOutboxMessagesCommandHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPublishOutboxMessagesCommandHandler_Handle_PublishFailureLeavesMessages(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPublishOutboxMessagesCommand(5)
	require.NoError(t, err)
	messages := testMessages(t, 1)
	brokerDown := errors.New("broker down")

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetUnpublished", ctx, 5).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages).Return(brokerDown).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	published, err := commands.NewPublishOutboxMessagesCommandHandler(factory, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, brokerDown)
	assert.Zero(t, published)
	outboxRepo.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
