package geo

import (
	"math"

	"wastetrack/internal/domain"
)

type Match struct {
	Center     domain.RecyclingCenter
	DistanceKM float64
}

// FindNearest scans centers in the given order and returns the closest one to point.
// Only a strictly smaller distance replaces the current best, so the earliest center
// wins a tie. Centers at a non-finite distance are skipped. ok is false when no
// center qualifies, including the empty set.
func FindNearest(point domain.GeoPoint, centers []domain.RecyclingCenter) (Match, bool) {
	best := -1
	bestDist := math.Inf(1)

	for i := range centers {
		d := Distance(point, centers[i].Location)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 {
		return Match{}, false
	}
	return Match{Center: centers[best], DistanceKM: bestDist}, true
}
