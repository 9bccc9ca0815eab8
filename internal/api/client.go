package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// maxErrorBodySize limits how much of an error response body is read for
// the error message.
const maxErrorBodySize = 4 * 1024

// requestIDHeader carries the client-generated request ID. The backend logs
// it, which makes support requests traceable across the two systems.
const requestIDHeader = "X-Request-ID"

// Client is the SERP-Master backend API client.
//
// Design decision: The client is an explicitly constructed value passed to
// the commands that need it, replacing the original UI's ambient
// module-level base URL and provider context. All state is read-only after
// construction, so one client is safe for concurrent use.
type Client struct {
	// baseURL is the backend base URL without a trailing slash.
	baseURL string

	// apiKey is the optional bearer token sent with every request.
	apiKey string

	// headers are extra headers applied to every request.
	headers map[string]string

	// httpClient performs the requests.
	httpClient *http.Client

	// limiter throttles outbound calls so fixed-interval polling across
	// concurrent audits stays within the backend's request budget.
	limiter *rate.Limiter

	// logger is used for request-level debug logging.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHeaders sets extra headers applied to every request, such as a
// per-site staging-bypass header from the project config.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the maximum request rate in requests per second.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

// NewClient creates a backend client for the given base URL.
// The timeout applies per request; task lifetimes are handled by the
// poller, not by the HTTP client.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(4), 4),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

// do sends a request with common headers and returns the raw response.
// The caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return resp, nil
}

// postJSON sends a JSON body and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, reqBody, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Read side only

	return decodeResponse(resp, path, out)
}

// getJSON sends a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Read side only

	return decodeResponse(resp, path, out)
}

// decodeResponse converts a non-2xx response into a StatusError and decodes
// a successful body into out.
func decodeResponse(resp *http.Response, path string, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck // Best effort
		return &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnexpectedShape, path, err)
	}
	return nil
}

// Health checks the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", &status); err != nil {
		return err
	}
	if status.Status == "" {
		return fmt.Errorf("%w: /health returned no status", ErrUnexpectedShape)
	}
	return nil
}
