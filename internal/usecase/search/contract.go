package search

import (
	"context"
	"io"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// Repository defines the API contract for search and recommendation requests.
type Repository interface {
	SearchByImage(
		ctx context.Context, image io.Reader, filename string, topN int,
	) ([]domain.Restaurant, error)

	RecommendationsForUser(
		ctx context.Context, userID string, topN int, coords *domain.Coordinates,
	) ([]domain.Restaurant, error)

	RecommendationsForGuest(
		ctx context.Context, topN int, coords *domain.Coordinates,
	) ([]domain.Restaurant, error)
}
