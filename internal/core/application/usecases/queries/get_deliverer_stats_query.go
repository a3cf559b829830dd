package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetDelivererStatsQueryIsNotConstructed = errors.New(
	"GetDelivererStatsQuery must be created via NewGetDelivererStatsQuery constructor",
)

// GetDelivererStatsQuery summarizes the calling deliverer's completed work.
type GetDelivererStatsQuery struct {
	delivererID kernel.UUID
	now         time.Time

	guard guard.ConstructorGuard
}

func NewGetDelivererStatsQuery(actor kernel.Actor, now time.Time) (GetDelivererStatsQuery, error) {
	if actor.Role != kernel.RoleDeliverer {
		return GetDelivererStatsQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "read deliverer stats")
	}
	if err := actor.ID.Validate(); err != nil {
		return GetDelivererStatsQuery{}, err
	}
	if now.IsZero() {
		return GetDelivererStatsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetDelivererStatsQuery{
		delivererID: actor.ID,
		now:         now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetDelivererStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDelivererStatsQueryIsNotConstructed)
}

func (q GetDelivererStatsQuery) DelivererID() kernel.UUID { return q.delivererID }
func (q GetDelivererStatsQuery) Now() time.Time           { return q.now }

// PeriodStats counts delivered orders whose last update falls in the period.
type PeriodStats struct {
	Deliveries int
	Earnings   float64
}

type DelivererStats struct {
	Today           PeriodStats
	Week            PeriodStats
	Month           PeriodStats
	ActiveOrders    int
	TotalDeliveries int
	Rating          float64
	IsOnline        bool
}

// StatsPeriods returns the UTC start of the day, the week (Monday) and the month containing now.
func StatsPeriods(now time.Time) (day, week, month time.Time) {
	now = now.UTC()
	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week = day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return day, week, month
}
