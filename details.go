package dishcovery

import (
	"context"

	detailsuc "github.com/thvnhtai/dishcovery/internal/usecase/details"
)

// DetailService resolves full restaurant records through the session
// detail cache and hands out per-view paginators.
//
// This is the one part of the SDK where failures reach the caller: a
// focused, explicitly requested detail view has no sensible empty-state
// fallback, so errors come back instead of degraded values.
type DetailService struct {
	svc *detailsuc.Service
}

// DetailView is one open detail view: the resolved record plus independent
// menu and review page cursors. See DetailService.Open.
type DetailView = detailsuc.Selection

// Get returns the detail record for summary, fetching and caching on first
// request. Concurrent calls for the same id share one fetch. A cache hit
// refetches only when coords is supplied, the cached entry knows its own
// position, and its distance is still unknown.
func (s *DetailService) Get(
	ctx context.Context, summary Restaurant, coords *Coordinates,
) (*Restaurant, error) {
	rec, err := s.svc.Get(ctx, summary, coords)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Open resolves the detail record and starts a new detail view with both
// page cursors at 1, seeded from the record's first-page arrays without
// further network I/O. Opening a newer view invalidates a still-running
// Open, which then returns ErrStaleSelection.
func (s *DetailService) Open(
	ctx context.Context, summary Restaurant, coords *Coordinates,
) (*DetailView, error) {
	return s.svc.Open(ctx, summary, coords)
}
