package kernel

import (
	"math"
	"time"
)

const (
	// EarthRadiusKm is the mean Earth radius used by HaversineDistanceKm.
	EarthRadiusKm = 6371.0

	// DefaultAverageSpeedKmh is the linear deliverer speed assumed by EstimateArrival.
	DefaultAverageSpeedKmh = 25.0

	kmPerDegreeLatitude = math.Pi * EarthRadiusKm / 180
)

// HaversineDistanceKm returns the great-circle distance between two points in kilometres.
// The result is symmetric and zero for identical points.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// clamp rounding noise so antipodal points stay inside asin's domain
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// EstimateArrival returns from + distanceKm/avgSpeedKmh hours.
// Non-positive distances return from unchanged; non-positive speeds use DefaultAverageSpeedKmh.
func EstimateArrival(from time.Time, distanceKm float64, avgSpeedKmh float64) time.Time {
	if distanceKm <= 0 {
		return from
	}
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAverageSpeedKmh
	}

	hours := distanceKm / avgSpeedKmh
	return from.Add(time.Duration(hours * float64(time.Hour)))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// BoundingBox is a coarse lat/lon rectangle that contains every point within a radius of its center.
// It is used to prune candidates before the exact distance check.
type BoundingBox struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

func NewBoundingBox(center Location, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegreeLatitude

	minLat := math.Max(LatitudeMin, center.latitude-dLat)
	maxLat := math.Min(LatitudeMax, center.latitude+dLat)

	// a pole inside the circle means every longitude qualifies
	if maxLat >= LatitudeMax || minLat <= LatitudeMin {
		return BoundingBox{minLat, maxLat, LongitudeMin, LongitudeMax}
	}

	ratio := math.Sin(radiusKm/EarthRadiusKm) / math.Cos(toRadians(center.latitude))
	if ratio >= 1 {
		return BoundingBox{minLat, maxLat, LongitudeMin, LongitudeMax}
	}
	dLon := math.Asin(ratio) * 180 / math.Pi

	return BoundingBox{
		MinLatitude:  minLat,
		MaxLatitude:  maxLat,
		MinLongitude: center.longitude - dLon,
		MaxLongitude: center.longitude + dLon,
	}
}

// CrossesAntimeridian reports whether the longitude range wraps past ±180.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.MinLongitude < LongitudeMin || b.MaxLongitude > LongitudeMax
}

func (b BoundingBox) Contains(l Location) bool {
	if l.latitude < b.MinLatitude || l.latitude > b.MaxLatitude {
		return false
	}
	lon := l.longitude
	switch {
	case b.MaxLongitude > LongitudeMax:
		return lon >= b.MinLongitude || lon <= b.MaxLongitude-360
	case b.MinLongitude < LongitudeMin:
		return lon <= b.MaxLongitude || lon >= b.MinLongitude+360
	default:
		return lon >= b.MinLongitude && lon <= b.MaxLongitude
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
