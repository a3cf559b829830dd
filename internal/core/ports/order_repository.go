// Package ports defines the contracts between the marketplace core and its infrastructure:
// repositories, the unit of work, the event publisher and the rate limiter.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Order numbers are unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, assignment and notes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim persists a claimed order with a single conditional write that only succeeds
	// while the stored row is still ready and unassigned. A lost race returns
	// errs.ErrObjectIsAlreadyAssigned and leaves the row untouched.
	Claim(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends. Status changes
	// use it so concurrent transitions of the same order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NumberExists reports whether an order number is taken.
	NumberExists(ctx context.Context, number string) (bool, error)

	// GetAllDeliveringByDeliverer returns every order the deliverer is carrying.
	GetAllDeliveringByDeliverer(ctx context.Context, delivererID kernel.UUID) ([]*order.Order, error)

	// GetAllPendingByStore returns the store's pending orders, oldest first, locked like GetForUpdate.
	GetAllPendingByStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error)
}
