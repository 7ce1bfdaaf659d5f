// Package base provides the shared HTTP fetch adapter for the OSRS data APIs.
// All upstream access is a single-attempt GET: no retries, no coordination,
// worst-case latency is one round trip.
package base

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/isaachansen/osrs-companion/internal/oserr"
	"github.com/isaachansen/osrs-companion/metrics"
)

// DefaultTimeout for API requests
const DefaultTimeout = 30 * time.Second

// Client issues GET requests against the upstream JSON APIs with a fixed
// identifying User-Agent header.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithUserAgent sets the identifying User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.HTTPClient.Timeout = d
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		UserAgent:  "osrs-companion-mcp/1.0",
		Logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetJSON issues a single GET request and decodes the JSON body into out.
// A non-2xx status yields an *oserr.RemoteAPIError carrying the status code.
// The body is decoded per caller expectation with no schema validation;
// malformed shapes propagate as whatever the caller's type observes.
func (c *Client) GetJSON(ctx context.Context, source, action, rawURL string, params url.Values, out any) error {
	reqURL := rawURL
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordUpstream(source, action, duration, false)
		c.Logger.Warn("API request failed",
			"source", source,
			"action", action,
			"error", err)
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordUpstream(source, action, duration, false)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstream(source, action, duration, false)
		c.Logger.Warn("API returned non-success status",
			"source", source,
			"action", action,
			"status", resp.StatusCode)
		return &oserr.RemoteAPIError{
			Source:     source,
			Endpoint:   req.URL.Path,
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.RecordUpstream(source, action, duration, false)
		return fmt.Errorf("failed to parse response: %w", err)
	}

	metrics.RecordUpstream(source, action, duration, true)
	return nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newHTTPClient creates an HTTP client with tuned transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
