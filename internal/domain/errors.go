package domain

import "errors"

var (
	// ErrMissingRestaurantID signals a detail or pagination request without an id.
	ErrMissingRestaurantID = errors.New("missing restaurant id")
	// ErrDetailFetch signals a failed detail fetch. The detail path is the one
	// place where failures propagate to the caller instead of degrading.
	ErrDetailFetch = errors.New("detail fetch failed")
	// ErrSearchFailed signals a failed search or recommendation request.
	// Callers always receive an empty result list alongside it.
	ErrSearchFailed = errors.New("search failed")
	// ErrStaleSelection signals that a detail fetch finished after the user had
	// already selected a different restaurant; its result must be discarded.
	ErrStaleSelection = errors.New("stale selection")
)
