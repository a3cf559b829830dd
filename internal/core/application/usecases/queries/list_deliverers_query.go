package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListDeliverersQueryIsNotConstructed = errors.New(
	"ListDeliverersQuery must be created via NewListDeliverersQuery constructor",
)

// ListDeliverersQuery is the admin view of every deliverer profile.
type ListDeliverersQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliverersQuery(actor kernel.Actor) (ListDeliverersQuery, error) {
	if !actor.IsAdmin() {
		return ListDeliverersQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "list deliverers")
	}
	return ListDeliverersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliverersQuery) Validate() error {
	return q.guard.Validate(ErrListDeliverersQueryIsNotConstructed)
}

// DelivererSummary marks Busy when the deliverer carries at least one order.
type DelivererSummary struct {
	ID              kernel.UUID
	VehicleType     deliverer.VehicleType
	VehiclePlate    string
	IsOnline        bool
	IsApproved      bool
	Rating          float64
	TotalDeliveries int
	Busy            bool
}
