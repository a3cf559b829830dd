package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by the aggregate on every successful status change and handed
// to the notification collaborator through the outbox.
type StatusChanged struct {
	OrderID     kernel.UUID
	OrderNumber string
	StoreID     kernel.UUID
	ClientID    kernel.UUID
	DelivererID *kernel.UUID
	From        Status
	To          Status
	Role        kernel.Role
	OccurredAt  time.Time
}
