package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/core/ports"
)

// EventTopics names the broker topics status changes are written to.
type EventTopics struct {
	OrderStatusChanged           string
	DeliveryRequestStatusChanged string
}

func DefaultEventTopics() EventTopics {
	return EventTopics{
		OrderStatusChanged:           "order.status.changed",
		DeliveryRequestStatusChanged: "delivery-request.status.changed",
	}
}

func saveOrderEvents(ctx context.Context, repo ports.OutboxRepository, topic string, o *order.Order) error {
	events := o.PullEvents()
	if len(events) == 0 {
		return nil
	}
	messages := make([]outbox.Message, 0, len(events))
	for _, e := range events {
		msg, err := outbox.FromOrderEvent(topic, e)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}
	return repo.Add(ctx, messages...)
}

func saveRequestEvents(ctx context.Context, repo ports.OutboxRepository, topic string, r *request.DeliveryRequest) error {
	events := r.PullEvents()
	if len(events) == 0 {
		return nil
	}
	messages := make([]outbox.Message, 0, len(events))
	for _, e := range events {
		msg, err := outbox.FromDeliveryRequestEvent(topic, e)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}
	return repo.Add(ctx, messages...)
}
