package ports

import (
	"context"

	"marketplace/internal/core/domain/model/geofence"
)

// GeofenceRepository stores the admin-managed areas.
type GeofenceRepository interface {
	Add(ctx context.Context, area *geofence.Area) error
}
