// Package http provides the HTTP client used to fetch the books document
// and cover images.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Optional timeouts
//   - Request pacing via golang.org/x/time/rate
//   - Mapping non-2xx responses to *StatusError
//
// # Basic Usage
//
//	client := http.NewClient("", 0)
//
//	// Fetch the books document
//	body, err := client.Get(ctx, "https://example.com/books.json")
//
//	// Paced client for cover probes
//	covers := client.WithRateLimit(8)
package http
