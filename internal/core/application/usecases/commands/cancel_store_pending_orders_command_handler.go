package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// CancelStorePendingOrdersCommandHandler cancels every pending order of a store through the
// regular admin transition, one audit note and one event per order. Orders already in
// progress are left for reassignment or explicit cancellation.
type CancelStorePendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	topics     EventTopics
}

func NewCancelStorePendingOrdersCommandHandler(
	uowFactory UoWFactory,
	topics EventTopics,
) CancelStorePendingOrdersCommandHandler {
	return CancelStorePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		topics:     topics,
	}
}

// Handle returns how many orders were cancelled. Either all of them are or none.
func (h CancelStorePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStorePendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	outboxRepo := uow.OutboxRepository()

	pending, err := orderRepo.GetAllPendingByStore(ctx, cmd.StoreID())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	reason := fmt.Sprintf("store suspended: %s", cmd.Reason())
	for _, o := range pending {
		if err = o.Transition(cmd.Actor(), order.Cancelled, reason, now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		if err = saveOrderEvents(ctx, outboxRepo, h.topics.OrderStatusChanged, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pending), nil
}
