package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories returned after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback after a successful Commit is a no-op that returns an error; callers defer it.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DeliveryRequestRepository() DeliveryRequestRepository
	DelivererRepository() DelivererRepository
	LocationRepository() LocationRepository
	TrackingRepository() TrackingRepository
	OutboxRepository() OutboxRepository
	PricingRepository() PricingRepository
	GeofenceRepository() GeofenceRepository
}
