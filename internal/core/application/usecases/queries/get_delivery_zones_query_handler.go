package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryZonesQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryZonesQueryHandler(db *gorm.DB) GetDeliveryZonesQueryHandler {
	return GetDeliveryZonesQueryHandler{db: db}
}

func (h GetDeliveryZonesQueryHandler) Handle(ctx context.Context, query GetDeliveryZonesQuery) (DeliveryZones, error) {
	if err := query.Validate(); err != nil {
		return DeliveryZones{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, center_latitude, center_longitude, radius_meters, area_type, created_at
		FROM geofence_areas
		WHERE is_active AND area_type IN (?, ?)
		ORDER BY name
	`, string(geofence.AreaDeliveryZone), string(geofence.AreaRestricted)).Rows()
	if err != nil {
		return DeliveryZones{}, err
	}
	defer rows.Close()

	result := DeliveryZones{Zones: make([]DeliveryZone, 0)}
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			lat, lon  float64
			radius    float64
			areaType  string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &name, &lat, &lon, &radius, &areaType, &createdAt); err != nil {
			return DeliveryZones{}, err
		}

		area, convErr := restoreArea(id, name, lat, lon, radius, areaType, createdAt)
		if convErr != nil {
			return DeliveryZones{}, convErr
		}

		inside, containsErr := area.Contains(query.Point())
		if containsErr != nil {
			return DeliveryZones{}, containsErr
		}
		if !inside {
			continue
		}

		if area.Type() == geofence.AreaRestricted {
			result.Restricted = true
			continue
		}
		result.Zones = append(result.Zones, DeliveryZone{
			ID:           area.ID(),
			Name:         area.Name(),
			Center:       area.Center(),
			RadiusMeters: area.RadiusMeters(),
		})
	}

	if err = rows.Err(); err != nil {
		return DeliveryZones{}, err
	}

	return result, nil
}

func restoreArea(
	id uuid.UUID,
	name string,
	lat, lon, radius float64,
	areaType string,
	createdAt time.Time,
) (*geofence.Area, error) {
	areaID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	center, err := kernel.NewLocation(lat, lon)
	if err != nil {
		return nil, err
	}
	return geofence.NewArea(areaID, name, center, radius, geofence.AreaType(areaType), true, createdAt)
}
