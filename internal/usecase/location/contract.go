package location

import (
	"context"
	"errors"
	"time"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// Provider failure classes. Providers should return errors wrapping one of
// these so acquisition outcomes can be classified for logging; any other
// error is classified as unknown.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("position request timed out")
)

// Options configures a single position fix request.
type Options struct {
	// MaximumAge is the oldest acceptable cached fix the platform may serve.
	MaximumAge time.Duration
	// HighAccuracy requests the most precise fix the platform offers.
	HighAccuracy bool
}

// Provider is the platform location capability. A nil Provider on the
// service means the platform offers none.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (domain.Coordinates, error)
}
