package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAvailableDeliveryRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableDeliveryRequestsQueryHandler(db *gorm.DB) ListAvailableDeliveryRequestsQueryHandler {
	return ListAvailableDeliveryRequestsQueryHandler{db: db}
}

func (h ListAvailableDeliveryRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDeliveryRequestsQuery,
) ([]AvailableDeliveryRequest, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup_address,
			pickup_latitude,
			pickup_longitude,
			dropoff_address,
			dropoff_latitude,
			dropoff_longitude,
			item_description,
			estimated_price,
			estimated_minutes,
			created_at
		FROM delivery_requests
		WHERE status = ? AND deliverer_id IS NULL
		ORDER BY created_at DESC
	`, request.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]AvailableDeliveryRequest, 0)
	for rows.Next() {
		var (
			item                   AvailableDeliveryRequest
			id                     uuid.UUID
			pickupLat, pickupLon   *float64
			dropoffLat, dropoffLon *float64
			createdAt              time.Time
		)
		if err = rows.Scan(
			&id,
			&item.PickupAddress,
			&pickupLat,
			&pickupLon,
			&item.DropoffAddress,
			&dropoffLat,
			&dropoffLon,
			&item.ItemDescription,
			&item.EstimatedPrice,
			&item.EstimatedMinutes,
			&createdAt,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.PickupLocation, err = optionalLocation(pickupLat, pickupLon); err != nil {
			return nil, err
		}
		if item.DropoffLocation, err = optionalLocation(dropoffLat, dropoffLon); err != nil {
			return nil, err
		}
		item.CreatedAt = createdAt.UTC()
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func optionalLocation(lat, lon *float64) (*kernel.Location, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
