package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderTrackingView, error) {
	if err := query.Validate(); err != nil {
		return OrderTrackingView{}, err
	}
	if err := authorizeOrderTracking(ctx, h.db, query.Actor(), query.OrderID()); err != nil {
		return OrderTrackingView{}, err
	}

	var row struct {
		Status      string
		DelivererID *uuid.UUID
	}
	err := h.db.WithContext(ctx).Raw(
		"SELECT status, deliverer_id FROM orders WHERE id = ?", query.OrderID().Bytes(),
	).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderTrackingView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderTrackingView{}, err
	}

	view := OrderTrackingView{OrderID: query.OrderID()}
	if view.Status, err = order.StatusFromString(row.Status); err != nil {
		return OrderTrackingView{}, err
	}

	if view.History, err = loadTracking(ctx, h.db, query.OrderID(), TrackOrderHistoryLimit); err != nil {
		return OrderTrackingView{}, err
	}
	if len(view.History) > 0 {
		latest := view.History[0]
		view.Latest = &latest
	}

	if row.DelivererID == nil {
		return view, nil
	}
	delivererID, err := kernel.UUIDFromBytes(row.DelivererID[:])
	if err != nil {
		return OrderTrackingView{}, err
	}
	view.DelivererID = &delivererID

	current, err := loadActiveLocation(ctx, h.db, delivererID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return OrderTrackingView{}, err
	default:
		view.DelivererLocation = &current
	}

	return view, nil
}
