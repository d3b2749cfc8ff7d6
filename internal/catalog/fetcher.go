package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/handiism/book-catalog/internal/catalog/dto"
	"github.com/handiism/book-catalog/internal/http"
	"github.com/handiism/book-catalog/internal/model"
)

// DefaultSourceURL is where the books document lives when nothing else is
// configured.
const DefaultSourceURL = "https://jas2485.github.io/assignment-4/books.json"

// Fetcher retrieves the books document and turns it into model.Books.
//
// Example usage:
//
//	f := NewFetcher(http.NewClient("", 0), DefaultSourceURL, DefaultImageBaseURL, logger)
//
//	books, err := f.Fetch(ctx)
//	var fe *FetchError
//	if errors.As(err, &fe) {
//	    fmt.Println("server said", fe.StatusCode)
//	}
type Fetcher struct {
	client    *http.Client
	source    string
	imageBase string
	logger    *slog.Logger
}

// NewFetcher creates a Fetcher reading source and resolving relative cover
// references against imageBase. A nil logger uses slog.Default().
func NewFetcher(client *http.Client, source, imageBase string, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:    client,
		source:    source,
		imageBase: imageBase,
		logger:    logger,
	}
}

// Source returns the URL the fetcher reads from.
func (f *Fetcher) Source() string {
	return f.source
}

// Fetch retrieves and decodes the books document.
//
// This method performs the following steps:
//  1. GETs the source URL
//  2. Decodes the body as a JSON array of book objects
//  3. Resolves every imageUrl against the image base
//
// Returns:
//   - *FetchError when the server answers with a non-success status
//   - *ParseError when the body is not a JSON array of books
//   - a wrapped transport error otherwise
//
// There is no retry; every failure is final for this call.
func (f *Fetcher) Fetch(ctx context.Context) ([]model.Book, error) {
	books, err := f.fetch(ctx)
	if err != nil {
		f.logger.ErrorContext(ctx, "Error fetching books", "source", f.source, "err", err)
		return nil, err
	}
	f.logger.DebugContext(ctx, "Books with processed image URLs", "count", len(books), "books", books)
	return books, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]model.Book, error) {
	body, err := f.client.Get(ctx, f.source)
	if err != nil {
		var se *http.StatusError
		if errors.As(err, &se) {
			return nil, &FetchError{StatusCode: se.Code}
		}
		return nil, fmt.Errorf("fetch books: %w", err)
	}

	var records []dto.JSONBook
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &ParseError{Err: err}
	}

	books := make([]model.Book, len(records))
	for i := range records {
		books[i] = records[i].ToBook()
		books[i].ImageURL = ResolveImagePath(f.imageBase, books[i].ImageURL)
	}
	return books, nil
}

// ResolveSource resolves path (for example "books.json") against base.
// An absolute path is returned unchanged.
func ResolveSource(base, path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() || base == "" {
		return ref.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(ref).String(), nil
}
