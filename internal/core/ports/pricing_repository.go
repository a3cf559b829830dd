package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
)

// PricingRepository reads the admin-owned pricing configuration.
type PricingRepository interface {
	// GetPlatformSettings overlays stored values onto pricing.DefaultPlatformSettings.
	GetPlatformSettings(ctx context.Context) (pricing.PlatformSettings, error)

	// GetCity returns errs.ErrObjectNotFound when the id is unknown.
	GetCity(ctx context.Context, id kernel.UUID) (*pricing.AllowedCity, error)
}
