// Package api is the generic HTTP client for the discovery backend: GET with
// query parameters, JSON POST and multipart upload, with bearer-token
// injection and transport-level metrics. Payload bytes are returned raw; key
// normalization happens one layer up.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/logger"
	"github.com/thvnhtai/dishcovery/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token. An empty token means the
// request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the discovery API under its /api/v1 prefix.
type Client struct {
	apiURL     string
	httpClient *http.Client
	tokens     TokenSource
	userAgent  string
	logger     *zap.Logger
}

// Config holds the transport settings.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	UserAgent  string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NewClient creates an API transport client.
func NewClient(cfg *Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	l := cfg.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Client{
		apiURL:     strings.TrimRight(cfg.BaseURL, "/") + "/api/v1",
		httpClient: hc,
		tokens:     cfg.Tokens,
		userAgent:  cfg.UserAgent,
		logger:     l,
	}
}

// Get issues a GET request. op labels the request in metrics and logs.
func (c *Client) Get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	u := c.apiURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, op)
}

// PostJSON issues a POST request with a JSON body.
func (c *Client) PostJSON(ctx context.Context, op, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apiURL+"/"+path, bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, op)
}

// PostMultipart issues a POST request uploading a single file part.
func (c *Client) PostMultipart(
	ctx context.Context, op, path string, query url.Values,
	fileField, filename string, file io.Reader,
) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	u := c.apiURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return c.do(req, op)
}

func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	// A request-scoped logger on the context overrides the client logger.
	log := c.logger
	if ctxLog := logger.FromContext(req.Context()); ctxLog != nil {
		log = ctxLog
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		log.Warn("API request failed",
			zap.String("operation", op), zap.Error(err))
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.APIRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("API returned error status",
			zap.String("operation", op), zap.Int("status", resp.StatusCode))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(body, 512)}
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
