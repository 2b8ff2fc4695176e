package details

import (
	"context"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// Repository defines the API contract for detail and nested-page fetches.
type Repository interface {
	Details(ctx context.Context, id string) (domain.Restaurant, error)

	Dishes(
		ctx context.Context, id string, page, pageSize int,
	) ([]domain.MenuItem, domain.Pagination, error)

	Reviews(
		ctx context.Context, id string, page, pageSize int,
	) ([]domain.Review, domain.Pagination, error)
}
