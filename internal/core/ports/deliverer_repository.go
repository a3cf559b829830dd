package ports

import (
	"context"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
)

type DelivererRepository interface {
	Add(ctx context.Context, aggregate *deliverer.Deliverer) error
	Update(ctx context.Context, aggregate *deliverer.Deliverer) error
	Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error)

	// GetForUpdate locks the profile row until the transaction ends; counters are
	// incremented through it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error)
}
