package services

import (
	"sort"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/tracking"
)

// NearbyDeliverer is one hit of a radius search.
type NearbyDeliverer struct {
	Location         *tracking.DelivererLocation
	DistanceKm       float64
	EstimatedArrival time.Time
}

// NearbyFinder applies the exact great-circle filter to candidate locations that were
// already pruned by a bounding box.
type NearbyFinder struct{}

func NewNearbyFinder() NearbyFinder {
	return NearbyFinder{}
}

// Find keeps the candidates within radiusKm of center, closest first. Ties keep input order.
// Equality with the radius is inside. Distances are rounded to two decimals after filtering.
func (f NearbyFinder) Find(
	center kernel.Location,
	radiusKm float64,
	candidates []*tracking.DelivererLocation,
	now time.Time,
) ([]NearbyDeliverer, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	result := make([]NearbyDeliverer, 0, len(candidates))
	distances := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		d, err := center.DistanceTo(c.Location())
		if err != nil {
			return nil, err
		}
		if d > radiusKm {
			continue
		}

		result = append(result, NearbyDeliverer{
			Location:         c,
			DistanceKm:       kernel.RoundTo(d, 2),
			EstimatedArrival: kernel.EstimateArrival(now, d, kernel.DefaultAverageSpeedKmh),
		})
		distances = append(distances, d)
	}

	idx := make([]int, len(result))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return distances[idx[a]] < distances[idx[b]] })

	sorted := make([]NearbyDeliverer, len(result))
	for i, j := range idx {
		sorted[i] = result[j]
	}
	return sorted, nil
}
