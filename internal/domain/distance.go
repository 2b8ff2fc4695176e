package domain

import "github.com/thvnhtai/dishcovery/internal/domain/geo"

// DistanceKmBetween returns the rounded Haversine distance between an origin
// and a venue position given as nullable components. Nil when the origin or
// either component is missing.
func DistanceKmBetween(origin *Coordinates, lat, lon *float64) *float64 {
	if origin == nil || lat == nil || lon == nil {
		return nil
	}
	d := geo.HaversineKm(origin.Latitude, origin.Longitude, *lat, *lon)
	return &d
}

// EnrichDistance attaches a client-computed distance to r when it has none.
// A server-computed distance always wins; the client value is a fallback for
// results that carry their own coordinates but no precomputed distance.
func EnrichDistance(r *Restaurant, origin *Coordinates) {
	if r.DistanceKm != nil {
		return
	}
	r.DistanceKm = DistanceKmBetween(origin, r.Latitude, r.Longitude)
}
