package dishcovery

import (
	"context"

	locationuc "github.com/thvnhtai/dishcovery/internal/usecase/location"
)

// LocationService acquires the device position. Failures of any kind
// (no capability, permission denied, timeout) resolve to nil coordinates:
// callers treat absence of a position as a normal condition and proceed
// with unranked-by-proximity results.
type LocationService struct {
	svc *locationuc.Service
}

// Acquire returns the device coordinates or nil. The first outcome is
// cached for the session; concurrent callers share one acquisition so the
// user sees at most one permission prompt.
func (s *LocationService) Acquire(ctx context.Context) *Coordinates {
	return s.svc.Acquire(ctx)
}

// Retry discards the session fix and acquires a fresh one.
func (s *LocationService) Retry(ctx context.Context) *Coordinates {
	return s.svc.Retry(ctx)
}
