// Package search orchestrates image search and recommendations: it submits
// the request, normalizes the failure mode to an empty list, and enriches
// results with distances when device coordinates are known.
package search

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// DefaultTopN is the number of matches requested when the caller passes none.
const DefaultTopN = 20

// Service runs search and recommendation requests.
type Service struct {
	repo   Repository
	logger *zap.Logger
	topN   int
}

// New creates a search service.
func New(repo Repository, topN int, logger *zap.Logger) *Service {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, topN: topN}
}

// ByImage uploads a dish photo and returns the server-ordered matches,
// distance-enriched when coords is non-nil. The returned slice is never nil;
// on failure it is empty and the error (wrapping domain.ErrSearchFailed) is
// returned alongside as a warning flag, not a hard failure.
func (s *Service) ByImage(
	ctx context.Context, image io.Reader, filename string, topN int,
	coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	if topN <= 0 {
		topN = s.topN
	}
	results, err := s.repo.SearchByImage(ctx, image, filename, topN)
	if err != nil {
		s.logger.Warn("Image search failed", zap.Error(err))
		return []domain.Restaurant{}, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
	return s.enrich(results, coords), nil
}

// Recommendations fetches the personalized feed when userID is non-empty and
// the guest feed otherwise. Same degradation contract as ByImage.
func (s *Service) Recommendations(
	ctx context.Context, userID string, topN int, coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	if topN <= 0 {
		topN = s.topN
	}

	var (
		results []domain.Restaurant
		err     error
	)
	if userID != "" {
		results, err = s.repo.RecommendationsForUser(ctx, userID, topN, coords)
	} else {
		results, err = s.repo.RecommendationsForGuest(ctx, topN, coords)
	}
	if err != nil {
		s.logger.Warn("Recommendations failed",
			zap.String("user_id", userID), zap.Error(err))
		return []domain.Restaurant{}, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
	return s.enrich(results, coords), nil
}

// enrich attaches client-computed distances to results that carry their own
// coordinates but no server-computed distance. Server distances win.
func (s *Service) enrich(results []domain.Restaurant, coords *domain.Coordinates) []domain.Restaurant {
	if results == nil {
		return []domain.Restaurant{}
	}
	if coords == nil {
		return results
	}
	for i := range results {
		domain.EnrichDistance(&results[i], coords)
	}
	return results
}
