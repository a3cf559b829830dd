package outbox

import (
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/request"
)

// OrderStatusChangedPayload is the wire shape of an order status change.
type OrderStatusChangedPayload struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	StoreID     string    `json:"store_id"`
	ClientID    string    `json:"client_id"`
	DelivererID *string   `json:"deliverer_id,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Role        string    `json:"changed_by_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// DeliveryRequestStatusChangedPayload is the wire shape of a delivery request status change.
type DeliveryRequestStatusChangedPayload struct {
	RequestID   string    `json:"request_id"`
	ClientID    string    `json:"client_id"`
	DelivererID *string   `json:"deliverer_id,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Role        string    `json:"changed_by_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// FromOrderEvent builds a message keyed by order id so a partition keeps per-order ordering.
func FromOrderEvent(topic string, e order.StatusChanged) (Message, error) {
	p := OrderStatusChangedPayload{
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber,
		StoreID:     e.StoreID.String(),
		ClientID:    e.ClientID.String(),
		From:        e.From.String(),
		To:          e.To.String(),
		Role:        e.Role.String(),
		OccurredAt:  e.OccurredAt,
	}
	if e.DelivererID != nil {
		id := e.DelivererID.String()
		p.DelivererID = &id
	}
	return NewMessage(topic, p.OrderID, p, e.OccurredAt)
}

func FromDeliveryRequestEvent(topic string, e request.StatusChanged) (Message, error) {
	p := DeliveryRequestStatusChangedPayload{
		RequestID:  e.RequestID.String(),
		ClientID:   e.ClientID.String(),
		From:       e.From.String(),
		To:         e.To.String(),
		Role:       e.Role.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.DelivererID != nil {
		id := e.DelivererID.String()
		p.DelivererID = &id
	}
	return NewMessage(topic, p.RequestID, p, e.OccurredAt)
}
