package search

import (
	"context"
	"io"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

type mockRepo struct {
	searchFn func(ctx context.Context, image io.Reader, filename string, topN int) ([]domain.Restaurant, error)
	userFn   func(ctx context.Context, userID string, topN int, coords *domain.Coordinates) ([]domain.Restaurant, error)
	guestFn  func(ctx context.Context, topN int, coords *domain.Coordinates) ([]domain.Restaurant, error)

	userCalls  int
	guestCalls int
}

func (m *mockRepo) SearchByImage(
	ctx context.Context, image io.Reader, filename string, topN int,
) ([]domain.Restaurant, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, image, filename, topN)
	}
	return nil, nil
}

func (m *mockRepo) RecommendationsForUser(
	ctx context.Context, userID string, topN int, coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	m.userCalls++
	if m.userFn != nil {
		return m.userFn(ctx, userID, topN, coords)
	}
	return nil, nil
}

func (m *mockRepo) RecommendationsForGuest(
	ctx context.Context, topN int, coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	m.guestCalls++
	if m.guestFn != nil {
		return m.guestFn(ctx, topN, coords)
	}
	return nil, nil
}

func f(v float64) *float64 { return &v }
