package dishcovery

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL         string
	httpClient      *http.Client
	tokens          TokenSource
	userAgent       string
	timeout         time.Duration
	logger          *zap.Logger
	locProvider     LocationProvider
	locationTimeout time.Duration
	clock           clockwork.Clock
	topN            int
	dishPageSize    int
	reviewPageSize  int
	sessionBackend  SessionBackend
}

// WithBaseURL sets the discovery API host, e.g. "https://api.example.com".
// Required.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithTokenSource sets the bearer token source for authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *clientConfig) { c.tokens = ts }
}

// WithStaticToken sets a fixed bearer token.
func WithStaticToken(token string) Option {
	return func(c *clientConfig) { c.tokens = StaticToken(token) }
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.userAgent = ua }
}

// WithTimeout sets the default HTTP timeout. Ignored when WithHTTPClient is
// also given.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithLogger sets the logger; defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithLocationProvider plugs in the platform location capability. Without
// one, Location().Acquire always returns nil coordinates.
func WithLocationProvider(p LocationProvider) Option {
	return func(c *clientConfig) { c.locProvider = p }
}

// WithLocationTimeout bounds a single position fix request (default 10s).
func WithLocationTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.locationTimeout = d }
}

// WithClock replaces the wall clock; tests use a fake to exercise the
// geolocation bounded wait.
func WithClock(clock clockwork.Clock) Option {
	return func(c *clientConfig) { c.clock = clock }
}

// WithTopN sets the default number of matches requested per search (default 20).
func WithTopN(n int) Option {
	return func(c *clientConfig) { c.topN = n }
}

// WithPageSizes sets the first-page sizes for menu items and reviews on a
// detail fetch (defaults 3 and 2).
func WithPageSizes(dishes, reviews int) Option {
	return func(c *clientConfig) {
		c.dishPageSize = dishes
		c.reviewPageSize = reviews
	}
}

// WithSessionBackend replaces the in-memory session storage.
func WithSessionBackend(b SessionBackend) Option {
	return func(c *clientConfig) { c.sessionBackend = b }
}
