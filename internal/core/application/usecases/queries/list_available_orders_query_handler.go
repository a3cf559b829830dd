package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableOrdersQueryHandler(db *gorm.DB) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{db: db}
}

// Handle returns the claimable orders, newest first.
func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]AvailableOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			store_id,
			street,
			city,
			latitude,
			longitude,
			total_amount,
			delivery_fee,
			created_at
		FROM orders
		WHERE status = ? AND deliverer_id IS NULL
		ORDER BY created_at DESC
	`, order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]AvailableOrder, 0)
	for rows.Next() {
		var (
			item        AvailableOrder
			id, storeID uuid.UUID
			lat, lon    float64
			createdAt   time.Time
		)
		if err = rows.Scan(
			&id,
			&item.Number,
			&storeID,
			&item.Street,
			&item.City,
			&lat,
			&lon,
			&item.TotalAmount,
			&item.DeliveryFee,
			&createdAt,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if item.Destination, err = kernel.NewLocation(lat, lon); err != nil {
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
