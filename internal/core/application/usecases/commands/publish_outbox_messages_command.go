package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultOutboxBatchSize = 100
	MaxOutboxBatchSize     = 1000
)

var ErrPublishOutboxMessagesCommandIsNotConstructed = errors.New(
	"PublishOutboxMessagesCommand must be created via NewPublishOutboxMessagesCommand constructor",
)

type PublishOutboxMessagesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewPublishOutboxMessagesCommand uses DefaultOutboxBatchSize when batchSize is zero.
func NewPublishOutboxMessagesCommand(batchSize int) (PublishOutboxMessagesCommand, error) {
	if batchSize == 0 {
		batchSize = DefaultOutboxBatchSize
	}
	if batchSize < 0 || batchSize > MaxOutboxBatchSize {
		return PublishOutboxMessagesCommand{}, errs.NewValueIsOutOfRangeError(
			"batch size", batchSize, 1, MaxOutboxBatchSize)
	}

	return PublishOutboxMessagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxMessagesCommandIsNotConstructed)
}

func (c PublishOutboxMessagesCommand) BatchSize() int { return c.batchSize }
