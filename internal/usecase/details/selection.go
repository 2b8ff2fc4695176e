package details

import (
	"context"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/metrics"
)

// Selection is one open detail view: the resolved record plus independent
// page cursors for its menu and review collections. Page state lives here,
// never in the cache, so reopening a view always starts from page 1 seeded
// with the cached first-page arrays.
type Selection struct {
	svc *Service
	gen uint64
	rec domain.Restaurant

	menuItems []domain.MenuItem
	menuPage  int
	reviews   []domain.Review
	revPage   int
}

// Open resolves the detail record for summary (through the cache) and starts
// a new selection. Opening a newer selection invalidates any still-running
// Open: a fetch that finishes after the user moved on returns
// domain.ErrStaleSelection and its result is discarded.
func (s *Service) Open(
	ctx context.Context, summary domain.Restaurant, coords *domain.Coordinates,
) (*Selection, error) {
	gen := s.selection.Add(1)

	rec, err := s.Get(ctx, summary, coords)
	if err != nil {
		return nil, err
	}
	if s.selection.Load() != gen {
		s.logger.Debug("Discarding stale detail selection",
			zap.String("restaurant_id", summary.ID))
		return nil, domain.ErrStaleSelection
	}

	return &Selection{
		svc:       s,
		gen:       gen,
		rec:       rec,
		menuItems: append([]domain.MenuItem(nil), rec.MenuItems...),
		menuPage:  1,
		reviews:   append([]domain.Review(nil), rec.CustomerReviews...),
		revPage:   1,
	}, nil
}

// Restaurant returns the resolved detail record.
func (v *Selection) Restaurant() domain.Restaurant { return v.rec }

// MenuItems returns the currently loaded menu page items.
func (v *Selection) MenuItems() []domain.MenuItem { return v.menuItems }

// MenuPageNumber returns the current menu page cursor.
func (v *Selection) MenuPageNumber() int { return v.menuPage }

// Reviews returns the currently loaded review page items.
func (v *Selection) Reviews() []domain.Review { return v.reviews }

// ReviewsPageNumber returns the current reviews page cursor.
func (v *Selection) ReviewsPageNumber() int { return v.revPage }

// MenuPage loads the given menu page. A call without pagination metadata is
// skipped and returns the current items unchanged. A fetch failure degrades
// to an empty page and is reported alongside so the caller can warn.
func (v *Selection) MenuPage(ctx context.Context, page int) ([]domain.MenuItem, error) {
	if v.rec.ID == "" || v.rec.DishesPagination == nil {
		v.svc.logger.Warn("Skipping menu page fetch: missing id or pagination info",
			zap.String("restaurant_id", v.rec.ID))
		metrics.PaginationFetchesTotal.WithLabelValues("menu", "skipped").Inc()
		return v.menuItems, nil
	}

	items, _, err := v.svc.repo.Dishes(ctx, v.rec.ID, page, v.rec.DishesPagination.PageSize)
	if err != nil {
		v.svc.logger.Warn("Menu page fetch failed",
			zap.String("restaurant_id", v.rec.ID), zap.Int("page", page), zap.Error(err))
		metrics.PaginationFetchesTotal.WithLabelValues("menu", "error").Inc()
		items = []domain.MenuItem{}
	} else {
		metrics.PaginationFetchesTotal.WithLabelValues("menu", "ok").Inc()
	}
	v.menuItems = items
	v.menuPage = page
	return items, err
}

// ReviewsPage loads the given review page with the same contract as MenuPage.
func (v *Selection) ReviewsPage(ctx context.Context, page int) ([]domain.Review, error) {
	if v.rec.ID == "" || v.rec.ReviewsPagination == nil {
		v.svc.logger.Warn("Skipping reviews page fetch: missing id or pagination info",
			zap.String("restaurant_id", v.rec.ID))
		metrics.PaginationFetchesTotal.WithLabelValues("reviews", "skipped").Inc()
		return v.reviews, nil
	}

	items, _, err := v.svc.repo.Reviews(ctx, v.rec.ID, page, v.rec.ReviewsPagination.PageSize)
	if err != nil {
		v.svc.logger.Warn("Reviews page fetch failed",
			zap.String("restaurant_id", v.rec.ID), zap.Int("page", page), zap.Error(err))
		metrics.PaginationFetchesTotal.WithLabelValues("reviews", "error").Inc()
		items = []domain.Review{}
	} else {
		metrics.PaginationFetchesTotal.WithLabelValues("reviews", "ok").Inc()
	}
	v.reviews = items
	v.revPage = page
	return items, err
}

// Current reports whether this selection is still the most recently opened
// one. Callers can use it to drop in-flight page results after a reselection.
func (v *Selection) Current() bool {
	return v.svc.selection.Load() == v.gen
}
