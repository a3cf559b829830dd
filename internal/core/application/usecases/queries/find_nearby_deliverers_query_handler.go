package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FindNearbyDeliverersQueryHandler struct {
	db     *gorm.DB
	finder services.NearbyFinder
}

func NewFindNearbyDeliverersQueryHandler(db *gorm.DB) FindNearbyDeliverersQueryHandler {
	return FindNearbyDeliverersQueryHandler{
		db:     db,
		finder: services.NewNearbyFinder(),
	}
}

type nearbyCandidate struct {
	vehicleType deliverer.VehicleType
	rating      float64
}

// Handle prunes candidates in SQL with a bounding box and leaves the exact radius check
// and the ordering to services.NearbyFinder.
func (h FindNearbyDeliverersQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyDeliverersQuery,
) ([]NearbyDeliverer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	box := kernel.NewBoundingBox(query.Center(), query.RadiusKm())

	lonClause, lonArgs := longitudeClause(box)
	args := []any{now.Add(-query.Freshness()), box.MinLatitude, box.MaxLatitude}
	args = append(args, lonArgs...)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.deliverer_id,
			l.latitude,
			l.longitude,
			l.accuracy_meters,
			l.speed_kmh,
			l.heading_degrees,
			l.created_at,
			d.vehicle_type,
			d.rating
		FROM deliverer_locations l
		JOIN deliverers d ON d.id = l.deliverer_id
		WHERE l.is_active
			AND d.is_online
			AND d.is_approved
			AND l.created_at >= ?
			AND l.latitude BETWEEN ? AND ?
			AND `+lonClause, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := make([]*tracking.DelivererLocation, 0)
	profiles := make(map[kernel.UUID]nearbyCandidate)
	for rows.Next() {
		var (
			id, delivererID uuid.UUID
			lat, lon        float64
			tel             tracking.Telemetry
			createdAt       time.Time
			profile         nearbyCandidate
			vehicleType     string
		)
		if err = rows.Scan(
			&id,
			&delivererID,
			&lat,
			&lon,
			&tel.AccuracyMeters,
			&tel.SpeedKmh,
			&tel.HeadingDegrees,
			&createdAt,
			&vehicleType,
			&profile.rating,
		); err != nil {
			return nil, err
		}

		sample, convErr := restoreSample(id, delivererID, lat, lon, tel, createdAt)
		if convErr != nil {
			return nil, convErr
		}
		profile.vehicleType = deliverer.VehicleType(vehicleType)
		samples = append(samples, sample)
		profiles[sample.DelivererID()] = profile
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	hits, err := h.finder.Find(query.Center(), query.RadiusKm(), samples, now)
	if err != nil {
		return nil, err
	}

	result := make([]NearbyDeliverer, 0, len(hits))
	for _, hit := range hits {
		profile := profiles[hit.Location.DelivererID()]
		result = append(result, NearbyDeliverer{
			DelivererID:      hit.Location.DelivererID(),
			VehicleType:      profile.vehicleType,
			Rating:           profile.rating,
			Location:         hit.Location.Location(),
			DistanceKm:       hit.DistanceKm,
			EstimatedArrival: hit.EstimatedArrival,
			LastSeenAt:       hit.Location.CreatedAt(),
		})
	}
	return result, nil
}

// longitudeClause splits a box that wraps past ±180 into two ranges.
func longitudeClause(box kernel.BoundingBox) (string, []any) {
	switch {
	case box.MaxLongitude > kernel.LongitudeMax:
		return "(l.longitude >= ? OR l.longitude <= ?)", []any{box.MinLongitude, box.MaxLongitude - 360}
	case box.MinLongitude < kernel.LongitudeMin:
		return "(l.longitude <= ? OR l.longitude >= ?)", []any{box.MaxLongitude, box.MinLongitude + 360}
	default:
		return "l.longitude BETWEEN ? AND ?", []any{box.MinLongitude, box.MaxLongitude}
	}
}

func restoreSample(
	id, delivererID uuid.UUID,
	lat, lon float64,
	tel tracking.Telemetry,
	createdAt time.Time,
) (*tracking.DelivererLocation, error) {
	sampleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromBytes(delivererID[:])
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(lat, lon)
	if err != nil {
		return nil, err
	}
	return tracking.RestoreDelivererLocation(sampleID, owner, loc, tel, true, createdAt.UTC())
}
