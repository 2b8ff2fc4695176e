package dishcovery

import "github.com/thvnhtai/dishcovery/internal/domain"

// Sentinel errors surfaced by the SDK; match with errors.Is.
var (
	// ErrMissingRestaurantID is returned for detail requests whose summary
	// carries no id. A caller error, not a cache fault.
	ErrMissingRestaurantID = domain.ErrMissingRestaurantID
	// ErrSearchFailed accompanies the empty list a failed search or
	// recommendation request degrades to.
	ErrSearchFailed = domain.ErrSearchFailed
	// ErrDetailFetch wraps failures on the detail path, the one place where
	// errors propagate instead of degrading.
	ErrDetailFetch = domain.ErrDetailFetch
	// ErrStaleSelection marks a detail fetch that finished after the user
	// selected a different restaurant; its result was discarded.
	ErrStaleSelection = domain.ErrStaleSelection
)
