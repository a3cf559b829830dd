package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/pkg/errs"
)

const (
	// DeliveryBasePrice and DeliveryPricePerKm drive quotes for ad-hoc delivery requests.
	DeliveryBasePrice  = 5.0
	DeliveryPricePerKm = 2.5
)

var ErrDistanceExceeded = errors.New("distance exceeds the maximum delivery distance")

type DistanceExceededError struct {
	DistanceKm    float64
	MaxDistanceKm float64
}

func NewDistanceExceededError(distanceKm, maxDistanceKm float64) *DistanceExceededError {
	return &DistanceExceededError{DistanceKm: distanceKm, MaxDistanceKm: maxDistanceKm}
}

func (e *DistanceExceededError) Error() string {
	return fmt.Sprintf("%s: %.2f km is above %.2f km", ErrDistanceExceeded, e.DistanceKm, e.MaxDistanceKm)
}

func (e *DistanceExceededError) Unwrap() error {
	return ErrDistanceExceeded
}

// FeeQuote is the breakdown of a delivery fee.
type FeeQuote struct {
	DistanceKm    float64
	FeePerKm      float64
	CalculatedFee float64
	MinimumFee    float64
	FinalFee      float64
}

// DeliveryFee prices a delivery of distanceKm.
//
// The per-km rate comes from city when it is active and overrides it, otherwise from the
// platform default. The final fee never drops below settings.MinimumDeliveryFee and is
// non-decreasing in distance. Distances above settings.MaximumDeliveryDistance fail with
// DistanceExceededError.
func DeliveryFee(distanceKm float64, city *pricing.AllowedCity, settings pricing.PlatformSettings) (FeeQuote, error) {
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		return FeeQuote{}, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, settings.MaximumDeliveryDistance)
	}
	if distanceKm > settings.MaximumDeliveryDistance {
		return FeeQuote{}, NewDistanceExceededError(distanceKm, settings.MaximumDeliveryDistance)
	}

	rate := settings.DefaultDeliveryFeePerKm
	if cityRate, ok := city.FeePerKm(); ok {
		rate = cityRate
	}

	calculated := distanceKm * rate
	return FeeQuote{
		DistanceKm:    distanceKm,
		FeePerKm:      rate,
		CalculatedFee: calculated,
		MinimumFee:    settings.MinimumDeliveryFee,
		FinalFee:      math.Max(calculated, settings.MinimumDeliveryFee),
	}, nil
}

// MinimumOrderValue is the active city's override or the platform default.
func MinimumOrderValue(city *pricing.AllowedCity, settings pricing.PlatformSettings) float64 {
	if v, ok := city.MinimumOrderValue(); ok {
		return v
	}
	return settings.DefaultMinimumOrderValue
}

// DeliveryEstimate is a straight-line quote between two points.
type DeliveryEstimate struct {
	DistanceKm       float64
	EstimatedMinutes int
	EstimatedPrice   float64
	EstimatedArrival time.Time
	Pickup           kernel.Location
	Dropoff          kernel.Location
}

func EstimateDelivery(pickup, dropoff kernel.Location, now time.Time) (DeliveryEstimate, error) {
	distance, err := pickup.DistanceTo(dropoff)
	if err != nil {
		return DeliveryEstimate{}, err
	}

	arrival := kernel.EstimateArrival(now, distance, kernel.DefaultAverageSpeedKmh)
	return DeliveryEstimate{
		DistanceKm:       kernel.RoundTo(distance, 2),
		EstimatedMinutes: int(math.Round(arrival.Sub(now).Minutes())),
		EstimatedPrice:   kernel.RoundTo(DeliveryBasePrice+distance*DeliveryPricePerKm, 2),
		EstimatedArrival: arrival,
		Pickup:           pickup,
		Dropoff:          dropoff,
	}, nil
}
