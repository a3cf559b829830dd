package tracking

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Stage labels a breadcrumb.
type Stage string

const (
	StagePickup    Stage = "pickup"
	StageInTransit Stage = "in_transit"
	StageDelivered Stage = "delivered"
)

func (s Stage) Validate() error {
	switch s {
	case StagePickup, StageInTransit, StageDelivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("tracking stage", fmt.Errorf("%q is not supported", string(s)))
}

// OrderTracking is a breadcrumb: where the deliverer was for an order and how far it still had to go.
type OrderTracking struct {
	id                  kernel.UUID
	orderID             kernel.UUID
	delivererID         kernel.UUID
	location            kernel.Location
	stage               Stage
	estimatedArrival    time.Time
	distanceRemainingKm float64
	createdAt           time.Time
}

type TrackingSnapshot struct {
	ID                  kernel.UUID
	OrderID             kernel.UUID
	DelivererID         kernel.UUID
	Location            kernel.Location
	Stage               Stage
	EstimatedArrival    time.Time
	DistanceRemainingKm float64
	CreatedAt           time.Time
}

func RestoreOrderTracking(s TrackingSnapshot) (*OrderTracking, error) {
	var errList []error
	errList = append(errList,
		s.ID.Validate(),
		s.OrderID.Validate(),
		s.DelivererID.Validate(),
		s.Location.Validate(),
		s.Stage.Validate(),
	)
	if s.DistanceRemainingKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distance remaining", s.DistanceRemainingKm, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &OrderTracking{
		id:                  s.ID,
		orderID:             s.OrderID,
		delivererID:         s.DelivererID,
		location:            s.Location,
		stage:               s.Stage,
		estimatedArrival:    s.EstimatedArrival,
		distanceRemainingKm: s.DistanceRemainingKm,
		createdAt:           s.CreatedAt,
	}, nil
}

func (t *OrderTracking) ID() kernel.UUID              { return t.id }
func (t *OrderTracking) OrderID() kernel.UUID         { return t.orderID }
func (t *OrderTracking) DelivererID() kernel.UUID     { return t.delivererID }
func (t *OrderTracking) Location() kernel.Location    { return t.location }
func (t *OrderTracking) Stage() Stage                 { return t.stage }
func (t *OrderTracking) EstimatedArrival() time.Time  { return t.estimatedArrival }
func (t *OrderTracking) DistanceRemainingKm() float64 { return t.distanceRemainingKm }
func (t *OrderTracking) CreatedAt() time.Time         { return t.createdAt }
