package dishcovery

import (
	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/domain/rank"
	"github.com/thvnhtai/dishcovery/internal/session"
	"github.com/thvnhtai/dishcovery/internal/transport/api"
	"github.com/thvnhtai/dishcovery/internal/usecase/location"
)

// Core data types. Restaurant doubles as the summary card record and, once
// detail fields are populated, the detail record.
type (
	Restaurant  = domain.Restaurant
	MenuItem    = domain.MenuItem
	Review      = domain.Review
	Pagination  = domain.Pagination
	Coordinates = domain.Coordinates
	PriceLevel  = domain.PriceLevel
)

// Price brackets, low to high.
const (
	PriceCheap    = domain.PriceCheap
	PriceModerate = domain.PriceModerate
	PricePricey   = domain.PricePricey
)

// FilterSpec configures the client-side filter/sort pipeline; see ApplyFilters.
type (
	FilterSpec = rank.Spec
	SortBy     = rank.SortBy
)

// Sort orders for ApplyFilters.
const (
	SortByScore    = rank.SortByScore
	SortByRating   = rank.SortByRating
	SortByDistance = rank.SortByDistance
)

// TokenSource supplies the bearer token for authenticated requests; an empty
// token sends the request as a guest.
type TokenSource = api.TokenSource

// StaticToken is a TokenSource returning a fixed token.
type StaticToken = api.StaticToken

// LocationProvider is the platform location capability plugged into the SDK.
type (
	LocationProvider = location.Provider
	LocationOptions  = location.Options
)

// SessionBackend is a pluggable key-value session storage; see Client.Session.
type SessionBackend = session.Backend
