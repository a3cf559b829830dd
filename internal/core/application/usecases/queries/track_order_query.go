package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

// TrackOrderHistoryLimit is how many breadcrumbs the combined tracking view carries.
const TrackOrderHistoryLimit = 10

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery builds the single view a client polls while waiting for an order.
// Access follows the tracking rules.
type TrackOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(actor kernel.Actor, orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := errors.Join(actor.Role.Validate(), orderID.Validate()); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) Actor() kernel.Actor  { return q.actor }
func (q TrackOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderTrackingView is nil-safe: Latest is nil before the first breadcrumb and
// DelivererLocation is nil while no deliverer is assigned or none has reported a position.
type OrderTrackingView struct {
	OrderID           kernel.UUID
	Status            order.Status
	DelivererID       *kernel.UUID
	Latest            *TrackingPoint
	DelivererLocation *CurrentLocation
	History           []TrackingPoint
}
