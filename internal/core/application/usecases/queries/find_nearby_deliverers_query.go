package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// StoreNearbyFreshness and AdminNearbyFreshness are the default freshness windows
	// per caller role.
	StoreNearbyFreshness = 10 * time.Minute
	AdminNearbyFreshness = 5 * time.Minute

	DefaultNearbyRadiusKm = 5.0
	MaxNearbyRadiusKm     = 50.0
)

var ErrFindNearbyDeliverersQueryIsNotConstructed = errors.New(
	"FindNearbyDeliverersQuery must be created via NewFindNearbyDeliverersQuery constructor",
)

// FindNearbyDeliverersQuery searches online, approved deliverers with a fresh position
// within radiusKm of center.
type FindNearbyDeliverersQuery struct {
	center    kernel.Location
	radiusKm  float64
	freshness time.Duration

	guard guard.ConstructorGuard
}

// NewFindNearbyDeliverersQuery accepts store and admin callers. A zero radius uses
// DefaultNearbyRadiusKm and a non-positive freshness the caller role's default.
func NewFindNearbyDeliverersQuery(
	actor kernel.Actor,
	center kernel.Location,
	radiusKm float64,
	freshness time.Duration,
) (FindNearbyDeliverersQuery, error) {
	var defaultFreshness time.Duration
	switch actor.Role { //nolint:exhaustive // other roles are forbidden
	case kernel.RoleStore:
		defaultFreshness = StoreNearbyFreshness
	case kernel.RoleAdmin:
		defaultFreshness = AdminNearbyFreshness
	default:
		return FindNearbyDeliverersQuery{}, errs.NewActionIsForbiddenError(actor.Role.String(), "search nearby deliverers")
	}

	if err := center.Validate(); err != nil {
		return FindNearbyDeliverersQuery{}, err
	}
	if radiusKm == 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if radiusKm < 0 || radiusKm > MaxNearbyRadiusKm {
		return FindNearbyDeliverersQuery{}, errs.NewValueIsOutOfRangeError("radius", radiusKm, 0, MaxNearbyRadiusKm)
	}
	if freshness <= 0 {
		freshness = defaultFreshness
	}

	return FindNearbyDeliverersQuery{
		center:    center,
		radiusKm:  radiusKm,
		freshness: freshness,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q FindNearbyDeliverersQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyDeliverersQueryIsNotConstructed)
}

func (q FindNearbyDeliverersQuery) Center() kernel.Location  { return q.center }
func (q FindNearbyDeliverersQuery) RadiusKm() float64        { return q.radiusKm }
func (q FindNearbyDeliverersQuery) Freshness() time.Duration { return q.freshness }

type NearbyDeliverer struct {
	DelivererID      kernel.UUID
	VehicleType      deliverer.VehicleType
	Rating           float64
	Location         kernel.Location
	DistanceKm       float64
	EstimatedArrival time.Time
	LastSeenAt       time.Time
}
