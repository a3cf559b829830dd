package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListAvailableDeliveryRequestsQueryIsNotConstructed = errors.New(
	"ListAvailableDeliveryRequestsQuery must be created via NewListAvailableDeliveryRequestsQuery constructor",
)

type ListAvailableDeliveryRequestsQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailableDeliveryRequestsQuery(actor kernel.Actor) (ListAvailableDeliveryRequestsQuery, error) {
	if actor.Role != kernel.RoleDeliverer && !actor.IsAdmin() {
		return ListAvailableDeliveryRequestsQuery{}, errs.NewActionIsForbiddenError(
			actor.Role.String(), "list available delivery requests")
	}
	return ListAvailableDeliveryRequestsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableDeliveryRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDeliveryRequestsQueryIsNotConstructed)
}

// AvailableDeliveryRequest is a pending request. Coordinates are nil when the client
// only gave a free-text address.
type AvailableDeliveryRequest struct {
	ID               kernel.UUID
	PickupAddress    string
	PickupLocation   *kernel.Location
	DropoffAddress   string
	DropoffLocation  *kernel.Location
	ItemDescription  string
	EstimatedPrice   float64
	EstimatedMinutes int
	CreatedAt        time.Time
}
