// Package details maintains the session-lifetime cache of restaurant detail
// records. A record is assembled from three concurrent fetches (detail, first
// menu page, first review page), merged with the caller's summary, and cached
// under the restaurant id. Concurrent misses for the same id share a single
// in-flight fetch; a cache hit only goes back to the network when device
// coordinates became available after the entry was cached without a distance.
package details

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/metrics"
)

// First-page sizes for the nested collections of a freshly opened detail view.
const (
	DefaultDishPageSize   = 3
	DefaultReviewPageSize = 2
)

const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Service is the detail cache and the paginator factory.
type Service struct {
	repo           Repository
	logger         *zap.Logger
	dishPageSize   int
	reviewPageSize int

	mu       sync.Mutex
	cache    map[string]domain.Restaurant
	inflight map[string]*fetchCall

	// selection is the generation counter guarding against a slow detail
	// fetch overwriting the view of a more recently selected restaurant.
	selection atomic.Uint64
}

type fetchCall struct {
	done chan struct{}
	rec  domain.Restaurant
	err  error
}

// New creates a detail service. Page sizes <= 0 fall back to the defaults.
func New(repo Repository, dishPageSize, reviewPageSize int, logger *zap.Logger) *Service {
	if dishPageSize <= 0 {
		dishPageSize = DefaultDishPageSize
	}
	if reviewPageSize <= 0 {
		reviewPageSize = DefaultReviewPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:           repo,
		logger:         logger,
		dishPageSize:   dishPageSize,
		reviewPageSize: reviewPageSize,
		cache:          make(map[string]domain.Restaurant),
		inflight:       make(map[string]*fetchCall),
	}
}

// Get returns the detail record for summary, fetching and caching it on the
// first request. Unlike the search path, failures propagate to the caller:
// an explicitly opened detail view has no sensible empty-state fallback.
func (s *Service) Get(
	ctx context.Context, summary domain.Restaurant, coords *domain.Coordinates,
) (domain.Restaurant, error) {
	if summary.ID == "" {
		s.logger.Warn("Detail request without restaurant id",
			zap.String("name", summary.Name))
		return domain.Restaurant{}, domain.ErrMissingRestaurantID
	}

	s.mu.Lock()
	if cached, ok := s.cache[summary.ID]; ok {
		if !needsDistanceRefresh(&cached, coords) {
			s.mu.Unlock()
			metrics.DetailCacheTotal.WithLabelValues("hit").Inc()
			return cached.Clone(), nil
		}
		metrics.DetailCacheTotal.WithLabelValues("refresh").Inc()
	} else {
		metrics.DetailCacheTotal.WithLabelValues("miss").Inc()
	}

	if call, ok := s.inflight[summary.ID]; ok {
		s.mu.Unlock()
		metrics.DetailCacheTotal.WithLabelValues("shared").Inc()
		select {
		case <-ctx.Done():
			return domain.Restaurant{}, ctx.Err()
		case <-call.done:
		}
		if call.err != nil {
			return domain.Restaurant{}, call.err
		}
		return call.rec.Clone(), nil
	}

	call := &fetchCall{done: make(chan struct{})}
	s.inflight[summary.ID] = call
	s.mu.Unlock()

	rec, err := s.fetch(ctx, summary, coords)

	s.mu.Lock()
	delete(s.inflight, summary.ID)
	if err == nil {
		s.cache[summary.ID] = rec.Clone()
	}
	s.mu.Unlock()

	// Waiters get their own copy; the caller's record must not alias theirs.
	call.rec = rec.Clone()
	call.err = err
	close(call.done)

	if err != nil {
		return domain.Restaurant{}, err
	}
	return rec, nil
}

// needsDistanceRefresh is the one condition under which a cache hit still
// triggers network I/O: the entry knows its own position, the device position
// is now known, but the entry was cached before a distance could be computed.
func needsDistanceRefresh(cached *domain.Restaurant, coords *domain.Coordinates) bool {
	return coords != nil &&
		cached.Latitude != nil && cached.Longitude != nil &&
		cached.DistanceKm == nil
}

// fetch assembles a detail record: detail, first menu page and first review
// page are fetched concurrently and joined.
func (s *Service) fetch(
	ctx context.Context, summary domain.Restaurant, coords *domain.Coordinates,
) (domain.Restaurant, error) {
	var (
		detail    domain.Restaurant
		dishes    []domain.MenuItem
		dishPage  domain.Pagination
		reviews   []domain.Review
		revPage   domain.Pagination
		errDetail error
		errDishes error
		errRevs   error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		detail, errDetail = s.repo.Details(ctx, summary.ID)
	}()
	go func() {
		defer wg.Done()
		dishes, dishPage, errDishes = s.repo.Dishes(ctx, summary.ID, 1, s.dishPageSize)
	}()
	go func() {
		defer wg.Done()
		reviews, revPage, errRevs = s.repo.Reviews(ctx, summary.ID, 1, s.reviewPageSize)
	}()
	wg.Wait()

	for _, err := range []error{errDetail, errDishes, errRevs} {
		if err != nil {
			s.logger.Warn("Detail fetch failed",
				zap.String("restaurant_id", summary.ID), zap.Error(err))
			return domain.Restaurant{}, fmt.Errorf("%w: %w", domain.ErrDetailFetch, err)
		}
	}

	rec := mergeDetail(summary, detail)
	if rec.Address != "" {
		rec.MapURL = mapSearchURL + url.QueryEscape(rec.Address)
	}
	rec.MenuItems = dishes
	rec.CustomerReviews = reviews
	rec.DishesPagination = &dishPage
	rec.ReviewsPagination = &revPage

	domain.EnrichDistance(&rec, coords)
	return rec, nil
}

// mergeDetail overlays the detail response on the caller's summary. Detail
// fields win where the response supplied them; a summary-known distance
// survives when the detail response omits one.
func mergeDetail(summary, detail domain.Restaurant) domain.Restaurant {
	rec := detail
	rec.ID = summary.ID
	if rec.Name == "" {
		rec.Name = summary.Name
	}
	if rec.Rating == 0 {
		rec.Rating = summary.Rating
	}
	if rec.RatingCount == 0 {
		rec.RatingCount = summary.RatingCount
	}
	if rec.MatchScore == nil {
		rec.MatchScore = summary.MatchScore
	}
	if rec.AvatarURL == "" {
		rec.AvatarURL = summary.AvatarURL
	}
	if !rec.PriceLevel.Valid() {
		rec.PriceLevel = summary.PriceLevel
	}
	if rec.Address == "" {
		rec.Address = summary.Address
	}
	if rec.Latitude == nil {
		rec.Latitude = summary.Latitude
	}
	if rec.Longitude == nil {
		rec.Longitude = summary.Longitude
	}
	if rec.DistanceKm == nil {
		rec.DistanceKm = summary.DistanceKm
	}
	return rec
}
