// Package dishcovery is the client SDK for the dish-photo restaurant
// discovery API: photograph a dish, find nearby restaurants serving similar
// food. It orchestrates device location, image search and recommendations,
// a session-lifetime detail cache with nested pagination, and a
// deterministic client-side filter/sort pipeline.
package dishcovery

import (
	"errors"

	"github.com/thvnhtai/dishcovery/internal/repository/restaurant"
	"github.com/thvnhtai/dishcovery/internal/session"
	"github.com/thvnhtai/dishcovery/internal/transport/api"
	clicksuc "github.com/thvnhtai/dishcovery/internal/usecase/clicks"
	detailsuc "github.com/thvnhtai/dishcovery/internal/usecase/details"
	locationuc "github.com/thvnhtai/dishcovery/internal/usecase/location"
	searchuc "github.com/thvnhtai/dishcovery/internal/usecase/search"
)

// Client is the dishcovery SDK entry point. Create one per user session; the
// detail cache and the acquired device position live for the Client's
// lifetime and are never persisted.
type Client struct {
	searchSvc  *searchuc.Service
	detailSvc  *detailsuc.Service
	clickSvc   *clicksuc.Service
	locSvc     *locationuc.Service
	sessionSvc *session.Store
}

// New creates a dishcovery Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.baseURL == "" {
		return nil, errors.New("dishcovery: API base URL required (use WithBaseURL)")
	}

	transport := api.NewClient(&api.Config{
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Tokens:     cfg.tokens,
		UserAgent:  cfg.userAgent,
		Timeout:    cfg.timeout,
		Logger:     cfg.logger,
	})
	repo := restaurant.New(transport)

	return &Client{
		searchSvc:  searchuc.New(repo, cfg.topN, cfg.logger),
		detailSvc:  detailsuc.New(repo, cfg.dishPageSize, cfg.reviewPageSize, cfg.logger),
		clickSvc:   clicksuc.New(repo, cfg.logger),
		locSvc:     locationuc.New(cfg.locProvider, cfg.clock, cfg.locationTimeout, cfg.logger),
		sessionSvc: session.New(cfg.sessionBackend, cfg.logger),
	}, nil
}

// Search returns the image search and recommendation service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}

// Details returns the detail cache and pagination service.
func (c *Client) Details() *DetailService {
	return &DetailService{svc: c.detailSvc}
}

// Clicks returns the interaction logging service.
func (c *Client) Clicks() *ClickService {
	return &ClickService{svc: c.clickSvc}
}

// Location returns the geolocation service.
func (c *Client) Location() *LocationService {
	return &LocationService{svc: c.locSvc}
}

// Session returns the session-scoped store for the last search results and
// uploaded-image preview.
func (c *Client) Session() *session.Store {
	return c.sessionSvc
}

// Close flushes background work (in-flight click sends).
func (c *Client) Close() {
	c.clickSvc.Flush()
}
