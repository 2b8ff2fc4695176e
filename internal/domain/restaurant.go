// Package domain holds the core restaurant discovery model shared by all
// usecases: restaurant summaries and details, coordinates, pagination windows
// and the error taxonomy.
package domain

// PriceLevel is an ordinal price bracket, low to high. Zero means unknown.
type PriceLevel int

const (
	PriceCheap    PriceLevel = 1
	PriceModerate PriceLevel = 2
	PricePricey   PriceLevel = 3
)

// Valid reports whether the level is one of the three known brackets.
func (p PriceLevel) Valid() bool {
	return p >= PriceCheap && p <= PricePricey
}

// Coordinates is a device or restaurant position in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Pagination describes the current window of one nested collection.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

// MenuItem is one dish on a restaurant menu. Price is kept as the display
// string the API returned; it arrives as either a JSON string or a number.
type MenuItem struct {
	Name        string
	Price       string
	Description string
	AvatarURL   string
}

// Review is one customer review.
type Review struct {
	ReviewerName string
	Rating       float64
	Comment      string
	Date         string
}

// Restaurant is both the summary card record and, once the detail fields are
// populated, the expanded detail record. Nullable fields are pointers:
// MatchScore is only present on image-search and recommendation results,
// DistanceKm only once a server- or client-side distance is known, and
// Latitude/Longitude only when the API exposes the venue position.
type Restaurant struct {
	ID          string
	Name        string
	Rating      float64
	RatingCount int
	MatchScore  *float64
	DistanceKm  *float64
	PriceLevel  PriceLevel
	Address     string
	AvatarURL   string
	Latitude    *float64
	Longitude   *float64

	// Detail-only fields.
	OpeningHours      string
	Description       string
	MapURL            string
	MenuItems         []MenuItem
	CustomerReviews   []Review
	DishesPagination  *Pagination
	ReviewsPagination *Pagination
}

// Position returns the restaurant's own coordinates, or nil when either
// component is unknown.
func (r *Restaurant) Position() *Coordinates {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// Clone returns a deep copy so cached records can be handed out without
// sharing mutable state with callers.
func (r Restaurant) Clone() Restaurant {
	out := r
	out.MatchScore = clonePtr(r.MatchScore)
	out.DistanceKm = clonePtr(r.DistanceKm)
	out.Latitude = clonePtr(r.Latitude)
	out.Longitude = clonePtr(r.Longitude)
	if r.MenuItems != nil {
		out.MenuItems = append([]MenuItem(nil), r.MenuItems...)
	}
	if r.CustomerReviews != nil {
		out.CustomerReviews = append([]Review(nil), r.CustomerReviews...)
	}
	if r.DishesPagination != nil {
		p := *r.DishesPagination
		out.DishesPagination = &p
	}
	if r.ReviewsPagination != nil {
		p := *r.ReviewsPagination
		out.ReviewsPagination = &p
	}
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
