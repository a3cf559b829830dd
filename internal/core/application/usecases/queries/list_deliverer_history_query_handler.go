package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDelivererHistoryQueryHandler struct {
	db *gorm.DB
}

func NewListDelivererHistoryQueryHandler(db *gorm.DB) ListDelivererHistoryQueryHandler {
	return ListDelivererHistoryQueryHandler{db: db}
}

// Handle returns one page of orders, most recently updated first.
func (h ListDelivererHistoryQueryHandler) Handle(
	ctx context.Context,
	query ListDelivererHistoryQuery,
) (DelivererHistory, error) {
	if err := query.Validate(); err != nil {
		return DelivererHistory{}, err
	}

	var total int
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE deliverer_id = ?", query.DelivererID().Bytes(),
	).Scan(&total).Error
	if err != nil {
		return DelivererHistory{}, err
	}

	result := DelivererHistory{
		Orders:  make([]HistoryOrder, 0),
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
		Pages:   (total + query.PerPage() - 1) / query.PerPage(),
	}
	if query.Offset() >= total {
		return result, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			store_id,
			status,
			street,
			city,
			total_amount,
			delivery_fee,
			created_at,
			updated_at
		FROM orders
		WHERE deliverer_id = ?
		ORDER BY updated_at DESC, id
		LIMIT ? OFFSET ?
	`, query.DelivererID().Bytes(), query.PerPage(), query.Offset()).Rows()
	if err != nil {
		return DelivererHistory{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                 HistoryOrder
			id, storeID          uuid.UUID
			status               string
			createdAt, updatedAt time.Time
		)
		if err = rows.Scan(
			&id,
			&item.Number,
			&storeID,
			&status,
			&item.Street,
			&item.City,
			&item.TotalAmount,
			&item.DeliveryFee,
			&createdAt,
			&updatedAt,
		); err != nil {
			return DelivererHistory{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return DelivererHistory{}, err
		}
		if item.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return DelivererHistory{}, err
		}
		if item.Status, err = order.StatusFromString(status); err != nil {
			return DelivererHistory{}, err
		}
		item.CreatedAt = createdAt.UTC()
		item.UpdatedAt = updatedAt.UTC()
		result.Orders = append(result.Orders, item)
	}

	if err = rows.Err(); err != nil {
		return DelivererHistory{}, err
	}

	return result, nil
}
