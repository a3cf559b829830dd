package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetProblematicOrdersQueryIsNotConstructed = errors.New(
	"GetProblematicOrdersQuery must be created via NewGetProblematicOrdersQuery constructor",
)

// GetProblematicOrdersQuery reports orders stuck in a status for too long.
//
// Example:
//
//	query, _ := NewGetProblematicOrdersQuery(admin, time.Now().UTC())
//	stuck, err := handler.Handle(ctx, query)
//	for _, o := range stuck {
//	    fmt.Printf("%s %s for %d min\n", o.Number, o.Kind, o.MinutesElapsed)
//	}
type GetProblematicOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetProblematicOrdersQuery(actor kernel.Actor, now time.Time) (GetProblematicOrdersQuery, error) {
	if !actor.IsAdmin() {
		return GetProblematicOrdersQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "list problematic orders")
	}
	if now.IsZero() {
		return GetProblematicOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetProblematicOrdersQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProblematicOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProblematicOrdersQueryIsNotConstructed)
}

func (q GetProblematicOrdersQuery) Now() time.Time { return q.now }

type ProblematicOrder struct {
	ID             kernel.UUID
	Number         string
	StoreID        kernel.UUID
	DelivererID    *kernel.UUID
	Status         order.Status
	Kind           services.ProblemKind
	MinutesElapsed int
	UpdatedAt      time.Time
}
