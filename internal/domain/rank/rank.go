// Package rank is the client-side filter and sort pipeline applied to a
// result set before display. Apply is pure: it never mutates its input and
// the same (list, spec) pair always yields the same ordering.
package rank

import (
	"sort"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// SortBy selects the ordering of a filtered result set.
type SortBy string

const (
	// SortByScore orders by match score, descending. The default.
	SortByScore SortBy = "score"
	// SortByRating orders by rating, descending.
	SortByRating SortBy = "rating"
	// SortByDistance orders by distance, ascending, unknown distances last.
	SortByDistance SortBy = "distance"
)

// Spec is a filter and sort specification. The zero value keeps every item
// and sorts by match score.
type Spec struct {
	SortBy      SortBy
	MinRating   float64
	PriceLevels []domain.PriceLevel
}

// Apply returns a new slice holding the items of list that pass the rating
// and price filters, stably sorted per spec. The input slice is left intact.
func Apply(list []domain.Restaurant, spec Spec) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(list))
	for _, r := range list {
		if r.Rating < spec.MinRating {
			continue
		}
		if len(spec.PriceLevels) > 0 && !containsLevel(spec.PriceLevels, r.PriceLevel) {
			continue
		}
		out = append(out, r)
	}

	switch spec.SortBy {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortByDistance:
		sort.SliceStable(out, func(i, j int) bool {
			return distanceLess(out[i].DistanceKm, out[j].DistanceKm)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return score(&out[i]) > score(&out[j])
		})
	}
	return out
}

// distanceLess orders known distances ascending and sinks unknown ones to the
// end; two unknowns keep their relative order via stable sort.
func distanceLess(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func score(r *domain.Restaurant) float64 {
	if r.MatchScore == nil {
		return 0
	}
	return *r.MatchScore
}

func containsLevel(levels []domain.PriceLevel, l domain.PriceLevel) bool {
	if !l.Valid() {
		// Items without a known price level never pass a non-empty filter.
		return false
	}
	for _, v := range levels {
		if v == l {
			return true
		}
	}
	return false
}
