package queries

import (
	"context"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDeliverersQueryHandler struct {
	db *gorm.DB
}

func NewListDeliverersQueryHandler(db *gorm.DB) ListDeliverersQueryHandler {
	return ListDeliverersQueryHandler{db: db}
}

func (h ListDeliverersQueryHandler) Handle(ctx context.Context, query ListDeliverersQuery) ([]DelivererSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.vehicle_type,
			d.vehicle_plate,
			d.is_online,
			d.is_approved,
			d.rating,
			d.total_deliveries,
			EXISTS (
				SELECT 1 FROM orders o WHERE o.deliverer_id = d.id AND o.status = ?
			) AS busy
		FROM deliverers d
		ORDER BY d.created_at, d.id
	`, order.Delivering.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]DelivererSummary, 0)
	for rows.Next() {
		var (
			item        DelivererSummary
			id          uuid.UUID
			vehicleType string
		)
		if err = rows.Scan(
			&id,
			&vehicleType,
			&item.VehiclePlate,
			&item.IsOnline,
			&item.IsApproved,
			&item.Rating,
			&item.TotalDeliveries,
			&item.Busy,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.VehicleType = deliverer.VehicleType(vehicleType)
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
