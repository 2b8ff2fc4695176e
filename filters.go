package dishcovery

import (
	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/domain/geo"
	"github.com/thvnhtai/dishcovery/internal/domain/rank"
)

// ApplyFilters runs the client-side filter/sort pipeline over a result set:
// rating floor, price-level membership, then a stable sort per spec.SortBy.
// Pure: the input slice is never mutated and the output is a fresh slice.
//
// Distance sorting is ascending with unknown distances last; score and
// rating sort descending, treating unknown values as zero.
func ApplyFilters(list []Restaurant, spec FilterSpec) []Restaurant {
	return rank.Apply(list, spec)
}

// HaversineKm returns the great-circle distance between two points in
// kilometers, rounded to two decimals. Symmetric, zero for identical points.
func HaversineKm(a, b Coordinates) float64 {
	return geo.HaversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DistanceKm is the nullable variant used for enrichment: nil when the
// origin or either venue component is unknown.
func DistanceKm(origin *Coordinates, lat, lon *float64) *float64 {
	return domain.DistanceKmBetween(origin, lat, lon)
}
