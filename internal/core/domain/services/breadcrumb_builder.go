package services

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/tracking"
)

// BreadcrumbBuilder turns a fresh deliverer position into in_transit breadcrumbs for
// every order the deliverer is carrying.
type BreadcrumbBuilder struct{}

func NewBreadcrumbBuilder() BreadcrumbBuilder {
	return BreadcrumbBuilder{}
}

// Build returns one breadcrumb per order. Orders not in delivering or not assigned to the
// location's deliverer are skipped. An empty slice is a valid result.
func (b BreadcrumbBuilder) Build(
	location *tracking.DelivererLocation,
	orders []*order.Order,
	now time.Time,
) ([]*tracking.OrderTracking, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	crumbs := make([]*tracking.OrderTracking, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		assignee := o.Deliverer()
		if o.Status() != order.Delivering || assignee == nil || !assignee.IsEqual(location.DelivererID()) {
			continue
		}

		remaining, err := location.Location().DistanceTo(o.Destination())
		if err != nil {
			return nil, err
		}

		crumb, err := tracking.RestoreOrderTracking(tracking.TrackingSnapshot{
			ID:                  kernel.NewUUID(),
			OrderID:             o.ID(),
			DelivererID:         location.DelivererID(),
			Location:            location.Location(),
			Stage:               tracking.StageInTransit,
			EstimatedArrival:    kernel.EstimateArrival(now, remaining, kernel.DefaultAverageSpeedKmh),
			DistanceRemainingKm: remaining,
			CreatedAt:           now,
		})
		if err != nil {
			return nil, err
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs, nil
}
