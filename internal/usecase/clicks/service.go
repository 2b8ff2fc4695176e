// Package clicks sends best-effort interaction events to the recommendation
// engine. The logging path must never block or fail the UI flow that
// triggered it: sends run in the background, failures are logged once and
// never retried, and unauthenticated users are a silent no-op.
package clicks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/metrics"
)

const defaultSendTimeout = 5 * time.Second

// Repository defines the API contract for click events.
type Repository interface {
	AddClick(ctx context.Context, userID, restaurantID string) error
}

// Service records restaurant clicks fire-and-forget.
type Service struct {
	repo    Repository
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// New creates a click service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, timeout: defaultSendTimeout}
}

// Log records a click for the given user and restaurant. Returns immediately;
// the send happens in the background. Guests (empty userID) are skipped.
func (s *Service) Log(userID, restaurantID string) {
	if userID == "" {
		s.logger.Debug("Skipping click log: user not authenticated",
			zap.String("restaurant_id", restaurantID))
		metrics.ClickLogsTotal.WithLabelValues("skipped").Inc()
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.repo.AddClick(ctx, userID, restaurantID); err != nil {
			s.logger.Warn("Failed to log restaurant click",
				zap.String("user_id", userID),
				zap.String("restaurant_id", restaurantID),
				zap.Error(err))
			metrics.ClickLogsTotal.WithLabelValues("failed").Inc()
			return
		}
		metrics.ClickLogsTotal.WithLabelValues("sent").Inc()
	}()
}

// Flush blocks until all in-flight click sends finish. Intended for shutdown
// and tests.
func (s *Service) Flush() {
	s.wg.Wait()
}
