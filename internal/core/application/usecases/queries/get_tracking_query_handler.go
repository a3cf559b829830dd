package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLatestTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetLatestTrackingQueryHandler(db *gorm.DB) GetLatestTrackingQueryHandler {
	return GetLatestTrackingQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the order is unknown or has no breadcrumbs yet.
func (h GetLatestTrackingQueryHandler) Handle(ctx context.Context, query GetLatestTrackingQuery) (TrackingPoint, error) {
	if err := query.Validate(); err != nil {
		return TrackingPoint{}, err
	}
	if err := authorizeOrderTracking(ctx, h.db, query.Actor(), query.OrderID()); err != nil {
		return TrackingPoint{}, err
	}

	points, err := loadTracking(ctx, h.db, query.OrderID(), 1)
	if err != nil {
		return TrackingPoint{}, err
	}
	if len(points) == 0 {
		return TrackingPoint{}, errs.NewObjectNotFoundError("order tracking", query.OrderID().String())
	}
	return points[0], nil
}

type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle returns an empty history for an order without breadcrumbs.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingPoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeOrderTracking(ctx, h.db, query.Actor(), query.OrderID()); err != nil {
		return nil, err
	}

	return loadTracking(ctx, h.db, query.OrderID(), query.Limit())
}

func loadTracking(ctx context.Context, db *gorm.DB, orderID kernel.UUID, limit int) ([]TrackingPoint, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			deliverer_id,
			latitude,
			longitude,
			stage,
			estimated_arrival,
			distance_remaining_km,
			created_at
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`, orderID.Bytes(), limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]TrackingPoint, 0)
	for rows.Next() {
		var (
			p               TrackingPoint
			id, delivererID uuid.UUID
			lat, lon        float64
			stage           string
		)
		if err = rows.Scan(
			&id,
			&delivererID,
			&lat,
			&lon,
			&stage,
			&p.EstimatedArrival,
			&p.DistanceRemainingKm,
			&p.RecordedAt,
		); err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.DelivererID, err = kernel.UUIDFromBytes(delivererID[:]); err != nil {
			return nil, err
		}
		if p.Location, err = kernel.NewLocation(lat, lon); err != nil {
			return nil, err
		}
		p.OrderID = orderID
		p.Stage = tracking.Stage(stage)
		p.EstimatedArrival = p.EstimatedArrival.UTC()
		p.RecordedAt = p.RecordedAt.UTC()
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
