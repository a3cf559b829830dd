package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultTrackingHistoryLimit = 50
	MaxTrackingHistoryLimit     = 500
)

var (
	ErrGetLatestTrackingQueryIsNotConstructed = errors.New(
		"GetLatestTrackingQuery must be created via NewGetLatestTrackingQuery constructor",
	)
	ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
		"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
	)
)

// GetLatestTrackingQuery reads the most recent breadcrumb of an order.
type GetLatestTrackingQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLatestTrackingQuery(actor kernel.Actor, orderID kernel.UUID) (GetLatestTrackingQuery, error) {
	if err := errors.Join(actor.Role.Validate(), orderID.Validate()); err != nil {
		return GetLatestTrackingQuery{}, err
	}
	return GetLatestTrackingQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLatestTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestTrackingQueryIsNotConstructed)
}

func (q GetLatestTrackingQuery) Actor() kernel.Actor  { return q.actor }
func (q GetLatestTrackingQuery) OrderID() kernel.UUID { return q.orderID }

// GetTrackingHistoryQuery reads up to limit breadcrumbs of an order, newest first.
type GetTrackingHistoryQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery treats a non-positive limit as DefaultTrackingHistoryLimit
// and caps it at MaxTrackingHistoryLimit.
func NewGetTrackingHistoryQuery(actor kernel.Actor, orderID kernel.UUID, limit int) (GetTrackingHistoryQuery, error) {
	if err := errors.Join(actor.Role.Validate(), orderID.Validate()); err != nil {
		return GetTrackingHistoryQuery{}, err
	}
	switch {
	case limit <= 0:
		limit = DefaultTrackingHistoryLimit
	case limit > MaxTrackingHistoryLimit:
		limit = MaxTrackingHistoryLimit
	}
	return GetTrackingHistoryQuery{
		actor:   actor,
		orderID: orderID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

func (q GetTrackingHistoryQuery) Actor() kernel.Actor  { return q.actor }
func (q GetTrackingHistoryQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetTrackingHistoryQuery) Limit() int           { return q.limit }

type TrackingPoint struct {
	ID                  kernel.UUID
	OrderID             kernel.UUID
	DelivererID         kernel.UUID
	Location            kernel.Location
	Stage               tracking.Stage
	EstimatedArrival    time.Time
	DistanceRemainingKm float64
	RecordedAt          time.Time
}
