package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
)

// LocationRepository stores deliverer position samples.
type LocationRepository interface {
	// ReplaceActive deactivates the deliverer's active sample and inserts location as the new
	// active one. Both writes happen in the caller's transaction; readers never see zero or
	// two active samples for a deliverer that has one.
	ReplaceActive(ctx context.Context, location *tracking.DelivererLocation) error

	// GetActive returns errs.ErrObjectNotFound when the deliverer never reported a position.
	GetActive(ctx context.Context, delivererID kernel.UUID) (*tracking.DelivererLocation, error)
}

// TrackingRepository stores order breadcrumbs. It is append-only.
type TrackingRepository interface {
	AddAll(ctx context.Context, crumbs []*tracking.OrderTracking) error
}
