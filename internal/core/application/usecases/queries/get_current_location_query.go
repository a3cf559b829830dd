package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// DefaultLocationFreshness is how old a position may be before it no longer counts as current.
const DefaultLocationFreshness = 10 * time.Minute

var ErrGetCurrentLocationQueryIsNotConstructed = errors.New(
	"GetCurrentLocationQuery must be created via NewGetCurrentLocationQuery constructor",
)

type GetCurrentLocationQuery struct {
	delivererID kernel.UUID
	freshness   time.Duration

	guard guard.ConstructorGuard
}

// NewGetCurrentLocationQuery lets deliverers read their own position and admins and stores
// read anyone's. A non-positive freshness uses DefaultLocationFreshness.
func NewGetCurrentLocationQuery(
	actor kernel.Actor,
	delivererID kernel.UUID,
	freshness time.Duration,
) (GetCurrentLocationQuery, error) {
	if err := delivererID.Validate(); err != nil {
		return GetCurrentLocationQuery{}, errs.NewValueIsRequiredErrorWithCause("deliverer", err)
	}
	switch actor.Role { //nolint:exhaustive // remaining roles are rejected below
	case kernel.RoleAdmin, kernel.RoleStore:
	case kernel.RoleDeliverer:
		if !actor.ID.IsEqual(delivererID) {
			return GetCurrentLocationQuery{}, errs.NewActionIsForbiddenError(
				actor.Role.String(), "read the location of another deliverer")
		}
	default:
		return GetCurrentLocationQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "read deliverer locations")
	}
	if freshness <= 0 {
		freshness = DefaultLocationFreshness
	}

	return GetCurrentLocationQuery{
		delivererID: delivererID,
		freshness:   freshness,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetCurrentLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentLocationQueryIsNotConstructed)
}

func (q GetCurrentLocationQuery) DelivererID() kernel.UUID { return q.delivererID }
func (q GetCurrentLocationQuery) Freshness() time.Duration { return q.freshness }

type CurrentLocation struct {
	DelivererID kernel.UUID
	Location    kernel.Location
	Telemetry   tracking.Telemetry
	RecordedAt  time.Time
}
