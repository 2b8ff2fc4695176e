// Package location wraps the platform location capability in a single
// bounded-time acquisition. Absence of coordinates is a normal condition:
// every failure class resolves to nil after being classified for logging,
// and nothing on this path ever reaches the caller as a hard error.
package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/metrics"
)

// Defaults mirror the position options the product has always used.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaximumAge = time.Minute
)

// Service acquires the device position once per session.
type Service struct {
	provider Provider
	clock    clockwork.Clock
	logger   *zap.Logger
	timeout  time.Duration
	opts     Options

	mu       sync.Mutex
	acquired bool
	fix      *domain.Coordinates
}

// New creates a location service. provider may be nil when the platform has
// no location capability; clock may be nil for the real clock.
func New(provider Provider, clock clockwork.Clock, timeout time.Duration, logger *zap.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		clock:    clock,
		logger:   logger,
		timeout:  timeout,
		opts:     Options{MaximumAge: DefaultMaximumAge, HighAccuracy: true},
	}
}

// Acquire returns the device coordinates, or nil when none can be obtained.
// The first successful or failed acquisition is cached for the session;
// callers wanting a fresh fix use Retry. Concurrent callers share one
// acquisition so the user sees at most one permission prompt.
func (s *Service) Acquire(ctx context.Context) *domain.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acquired {
		return copyFix(s.fix)
	}
	s.fix = s.acquireLocked(ctx)
	s.acquired = true
	return copyFix(s.fix)
}

// Retry discards the session fix and acquires again.
func (s *Service) Retry(ctx context.Context) *domain.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fix = s.acquireLocked(ctx)
	s.acquired = true
	return copyFix(s.fix)
}

func (s *Service) acquireLocked(ctx context.Context) *domain.Coordinates {
	if s.provider == nil {
		s.logger.Warn("Geolocation is not supported on this platform")
		metrics.LocationAcquisitionsTotal.WithLabelValues("unsupported").Inc()
		return nil
	}

	type result struct {
		coords domain.Coordinates
		err    error
	}
	ch := make(chan result, 1)

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		coords, err := s.provider.CurrentPosition(cctx, s.opts)
		ch <- result{coords: coords, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			s.recordFailure(r.err)
			return nil
		}
		metrics.LocationAcquisitionsTotal.WithLabelValues("ok").Inc()
		return &domain.Coordinates{
			Latitude:  r.coords.Latitude,
			Longitude: r.coords.Longitude,
		}
	case <-s.clock.After(s.timeout):
		s.recordFailure(ErrTimeout)
		return nil
	case <-ctx.Done():
		s.recordFailure(ctx.Err())
		return nil
	}
}

// recordFailure classifies the failure for logs and metrics only; callers
// always see nil coordinates.
func (s *Service) recordFailure(err error) {
	var result, msg string
	switch {
	case errors.Is(err, ErrPermissionDenied):
		result, msg = "permission_denied", "Location access denied by user"
	case errors.Is(err, ErrPositionUnavailable):
		result, msg = "unavailable", "Location information is unavailable"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		result, msg = "timeout", "Location request timed out"
	default:
		result, msg = "unknown", "Failed to get device location"
	}
	s.logger.Warn(msg, zap.Error(err))
	metrics.LocationAcquisitionsTotal.WithLabelValues(result).Inc()
}

func copyFix(fix *domain.Coordinates) *domain.Coordinates {
	if fix == nil {
		return nil
	}
	c := *fix
	return &c
}
