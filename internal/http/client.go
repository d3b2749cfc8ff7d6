package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "BookCatalog"

// StatusError is returned when a server answers with a non-2xx status.
//
// Callers that need the numeric code should use errors.As:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.Code == 404 {
//	    // not found
//	}
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Client wraps HTTP operations with catalog-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Optional request timeout (zero leaves the transport defaults in charge)
//   - Optional request pacing through a token-bucket limiter
//
// Example usage:
//
//	client := NewClient("BookCatalog", 0)
//
//	// Fetch the books document
//	body, err := client.Get(ctx, "https://example.com/books.json")
//
//	// Cover downloads at most 4 per second
//	covers := client.WithRateLimit(4)
//	img, err := covers.DownloadBytes(ctx, coverURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new HTTP client.
//
// An empty userAgent falls back to DefaultUserAgent. A zero timeout means the
// client never gives up on its own; cancellation is then left to ctx.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// WithRateLimit returns a client sharing the same transport that waits for a
// token before each request. A non-positive rps disables pacing.
func (c *Client) WithRateLimit(rps float64) *Client {
	clone := *c
	clone.limiter = nil
	if rps > 0 {
		clone.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &clone
}

// WithTimeout returns a client sharing the same transport settings but with
// its own overall request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	clone := *c
	hc := *c.httpClient
	hc.Timeout = timeout
	clone.httpClient = &hc
	return &clone
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The limiter wait is cancelled
//   - The request fails
//   - The response status is not 2xx (a *StatusError)
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/books.json")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	return io.ReadAll(resp.Body)
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover images.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
