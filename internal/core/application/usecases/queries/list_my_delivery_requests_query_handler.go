package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const myDeliveryRequestsSQL = `
	SELECT
		id,
		client_id,
		deliverer_id,
		status,
		pickup_address,
		pickup_latitude,
		pickup_longitude,
		dropoff_address,
		dropoff_latitude,
		dropoff_longitude,
		item_description,
		estimated_price,
		estimated_minutes,
		payment_method,
		created_at,
		updated_at
	FROM delivery_requests
`

type ListMyDeliveryRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListMyDeliveryRequestsQueryHandler(db *gorm.DB) ListMyDeliveryRequestsQueryHandler {
	return ListMyDeliveryRequestsQueryHandler{db: db}
}

// Handle filters by client_id for clients and by deliverer_id for deliverers, newest first.
func (h ListMyDeliveryRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListMyDeliveryRequestsQuery,
) ([]MyDeliveryRequest, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := "WHERE client_id = ?"
	if query.Actor().Role == kernel.RoleDeliverer {
		filter = "WHERE deliverer_id = ?"
	}

	rows, err := h.db.WithContext(ctx).Raw(
		myDeliveryRequestsSQL+filter+" ORDER BY created_at DESC, id", query.Actor().ID.Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]MyDeliveryRequest, 0)
	for rows.Next() {
		var (
			item                   MyDeliveryRequest
			id, clientID           uuid.UUID
			delivererID            *uuid.UUID
			status, paymentMethod  string
			pickupLat, pickupLon   *float64
			dropoffLat, dropoffLon *float64
			createdAt, updatedAt   time.Time
		)
		if err = rows.Scan(
			&id,
			&clientID,
			&delivererID,
			&status,
			&item.PickupAddress,
			&pickupLat,
			&pickupLon,
			&item.DropoffAddress,
			&dropoffLat,
			&dropoffLon,
			&item.ItemDescription,
			&item.EstimatedPrice,
			&item.EstimatedMinutes,
			&paymentMethod,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if delivererID != nil {
			dID, idErr := kernel.UUIDFromBytes((*delivererID)[:])
			if idErr != nil {
				return nil, idErr
			}
			item.DelivererID = &dID
		}
		if item.Status, err = request.StatusFromString(status); err != nil {
			return nil, err
		}
		if item.PickupLocation, err = optionalLocation(pickupLat, pickupLon); err != nil {
			return nil, err
		}
		if item.DropoffLocation, err = optionalLocation(dropoffLat, dropoffLon); err != nil {
			return nil, err
		}
		item.PaymentMethod = kernel.PaymentMethod(paymentMethod)
		item.CreatedAt = createdAt.UTC()
		item.UpdatedAt = updatedAt.UTC()
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
