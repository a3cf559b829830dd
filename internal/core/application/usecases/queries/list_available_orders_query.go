package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery lists ready orders nobody has claimed yet.
type ListAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(actor kernel.Actor) (ListAvailableOrdersQuery, error) {
	if actor.Role != kernel.RoleDeliverer && !actor.IsAdmin() {
		return ListAvailableOrdersQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "list available orders")
	}
	return ListAvailableOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

type AvailableOrder struct {
	ID          kernel.UUID
	Number      string
	StoreID     kernel.UUID
	Street      string
	City        string
	Destination kernel.Location
	TotalAmount float64
	DeliveryFee float64
	CreatedAt   time.Time
}
