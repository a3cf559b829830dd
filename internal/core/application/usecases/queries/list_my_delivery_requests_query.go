package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListMyDeliveryRequestsQueryIsNotConstructed = errors.New(
	"ListMyDeliveryRequestsQuery must be created via NewListMyDeliveryRequestsQuery constructor",
)

// ListMyDeliveryRequestsQuery lists the requests a client created or a deliverer claimed.
type ListMyDeliveryRequestsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewListMyDeliveryRequestsQuery(actor kernel.Actor) (ListMyDeliveryRequestsQuery, error) {
	if actor.Role != kernel.RoleClient && actor.Role != kernel.RoleDeliverer {
		return ListMyDeliveryRequestsQuery{}, errs.NewActionIsForbiddenError(
			actor.Role.String(), "list own delivery requests")
	}
	if err := actor.ID.Validate(); err != nil {
		return ListMyDeliveryRequestsQuery{}, err
	}
	return ListMyDeliveryRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyDeliveryRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListMyDeliveryRequestsQueryIsNotConstructed)
}

func (q ListMyDeliveryRequestsQuery) Actor() kernel.Actor { return q.actor }

type MyDeliveryRequest struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	DelivererID      *kernel.UUID
	Status           request.Status
	PickupAddress    string
	PickupLocation   *kernel.Location
	DropoffAddress   string
	DropoffLocation  *kernel.Location
	ItemDescription  string
	EstimatedPrice   float64
	EstimatedMinutes int
	PaymentMethod    kernel.PaymentMethod
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
