// Package geo holds the great-circle distance and the nearest recycling center lookup
// used when a citizen submits a report.
package geo

import (
	"math"

	"wastetrack/internal/domain"
)

// EarthRadiusKM is the mean Earth radius the haversine is evaluated with.
const EarthRadiusKM = 6371.0

// Distance returns the haversine great-circle distance between a and b in kilometres.
// Non-finite input yields a non-finite result.
func Distance(a, b domain.GeoPoint) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*sinLng*sinLng

	// rounding can push h just outside [0,1]; NaN passes through untouched
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
