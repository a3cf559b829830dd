package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultHistoryPerPage = 20
	MaxHistoryPerPage     = 100
)

var ErrListDelivererHistoryQueryIsNotConstructed = errors.New(
	"ListDelivererHistoryQuery must be created via NewListDelivererHistoryQuery constructor",
)

// ListDelivererHistoryQuery pages through the orders assigned to the calling deliverer.
type ListDelivererHistoryQuery struct {
	delivererID kernel.UUID
	page        int
	perPage     int

	guard guard.ConstructorGuard
}

// NewListDelivererHistoryQuery treats a non-positive page as the first one. perPage falls
// back to DefaultHistoryPerPage and is capped at MaxHistoryPerPage.
func NewListDelivererHistoryQuery(actor kernel.Actor, page, perPage int) (ListDelivererHistoryQuery, error) {
	if actor.Role != kernel.RoleDeliverer {
		return ListDelivererHistoryQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "read delivery history")
	}
	if err := actor.ID.Validate(); err != nil {
		return ListDelivererHistoryQuery{}, err
	}
	if page <= 0 {
		page = 1
	}
	switch {
	case perPage <= 0:
		perPage = DefaultHistoryPerPage
	case perPage > MaxHistoryPerPage:
		perPage = MaxHistoryPerPage
	}
	return ListDelivererHistoryQuery{
		delivererID: actor.ID,
		page:        page,
		perPage:     perPage,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListDelivererHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListDelivererHistoryQueryIsNotConstructed)
}

func (q ListDelivererHistoryQuery) DelivererID() kernel.UUID { return q.delivererID }
func (q ListDelivererHistoryQuery) Page() int                { return q.page }
func (q ListDelivererHistoryQuery) PerPage() int             { return q.perPage }
func (q ListDelivererHistoryQuery) Offset() int              { return (q.page - 1) * q.perPage }

type HistoryOrder struct {
	ID          kernel.UUID
	Number      string
	StoreID     kernel.UUID
	Status      order.Status
	Street      string
	City        string
	TotalAmount float64
	DeliveryFee float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DelivererHistory struct {
	Orders  []HistoryOrder
	Total   int
	Page    int
	PerPage int
	Pages   int
}
