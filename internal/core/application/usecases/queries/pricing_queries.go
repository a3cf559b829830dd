package queries

import (
	"errors"
	"math"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrEstimateFeeQueryIsNotConstructed = errors.New(
		"EstimateFeeQuery must be created via NewEstimateFeeQuery constructor",
	)
	ErrGetOrderLimitsQueryIsNotConstructed = errors.New(
		"GetOrderLimitsQuery must be created via NewGetOrderLimitsQuery constructor",
	)
	ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
		"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
	)
)

// EstimateFeeQuery prices a delivery of a given distance, optionally in a city that
// overrides the platform rate.
type EstimateFeeQuery struct {
	distanceKm float64
	cityID     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewEstimateFeeQuery(distanceKm float64, cityID *kernel.UUID) (EstimateFeeQuery, error) {
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		return EstimateFeeQuery{}, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, "unbounded")
	}
	if cityID != nil {
		if err := cityID.Validate(); err != nil {
			return EstimateFeeQuery{}, errs.NewValueIsInvalidErrorWithCause("city", err)
		}
	}
	return EstimateFeeQuery{distanceKm: distanceKm, cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimateFeeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateFeeQueryIsNotConstructed)
}

func (q EstimateFeeQuery) DistanceKm() float64  { return q.distanceKm }
func (q EstimateFeeQuery) CityID() *kernel.UUID { return q.cityID }

type GetOrderLimitsQuery struct {
	cityID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderLimitsQuery(cityID *kernel.UUID) (GetOrderLimitsQuery, error) {
	if cityID != nil {
		if err := cityID.Validate(); err != nil {
			return GetOrderLimitsQuery{}, errs.NewValueIsInvalidErrorWithCause("city", err)
		}
	}
	return GetOrderLimitsQuery{cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderLimitsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLimitsQueryIsNotConstructed)
}

func (q GetOrderLimitsQuery) CityID() *kernel.UUID { return q.cityID }

type OrderLimits struct {
	MinimumOrderValue       float64
	MaximumDeliveryDistance float64
}

// EstimateDeliveryQuery quotes an ad-hoc delivery between two points.
type EstimateDeliveryQuery struct {
	pickup  kernel.Location
	dropoff kernel.Location

	guard guard.ConstructorGuard
}

func NewEstimateDeliveryQuery(pickup, dropoff kernel.Location) (EstimateDeliveryQuery, error) {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return EstimateDeliveryQuery{}, err
	}
	return EstimateDeliveryQuery{pickup: pickup, dropoff: dropoff, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

func (q EstimateDeliveryQuery) Pickup() kernel.Location  { return q.pickup }
func (q EstimateDeliveryQuery) Dropoff() kernel.Location { return q.dropoff }
