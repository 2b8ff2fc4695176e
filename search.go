package dishcovery

import (
	"context"
	"io"

	searchuc "github.com/thvnhtai/dishcovery/internal/usecase/search"
)

// SearchService submits image search and recommendation requests.
//
// Both operations share one degradation contract: the returned slice is
// always non-nil, and any failure comes back as an empty list plus an error
// wrapping ErrSearchFailed that callers may surface as a warning. Neither
// call ever panics the UI flow with a hard failure.
type SearchService struct {
	svc *searchuc.Service
}

// ByImage uploads a dish photo and returns the top topN matching restaurants
// in the server's match-score order (the client never re-sorts). When coords
// is non-nil, results carrying their own coordinates but no server-computed
// distance are enriched with a client-computed one. topN <= 0 uses the
// client default.
func (s *SearchService) ByImage(
	ctx context.Context, image io.Reader, filename string, topN int,
	coords *Coordinates,
) ([]Restaurant, error) {
	return s.svc.ByImage(ctx, image, filename, topN, coords)
}

// Recommendations fetches the personalized feed for userID, or the guest
// feed when userID is empty. Known coordinates are both forwarded to the
// server and used for client-side distance enrichment.
func (s *SearchService) Recommendations(
	ctx context.Context, userID string, topN int, coords *Coordinates,
) ([]Restaurant, error) {
	return s.svc.Recommendations(ctx, userID, topN, coords)
}
