package render

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/book-catalog/internal/cover"
	"github.com/handiism/book-catalog/internal/model"
)

// DefaultPlaceholderURL is shown when a book has no cover or its cover
// cannot be loaded.
const DefaultPlaceholderURL = "https://via.placeholder.com/300x450.png?text=Book+Cover"

// DisplayID identifies the region cards are rendered into.
const DisplayID = "bookDisplay"

// ImageLoader loads a cover image. *cover.Loader satisfies it.
type ImageLoader interface {
	Load(ctx context.Context, url string) (*cover.Cover, error)
}

// Options controls how cards are built.
type Options struct {
	// PlaceholderURL replaces missing or broken covers.
	// Empty means DefaultPlaceholderURL.
	PlaceholderURL string

	// Loader probes each cover. Nil skips probing and trusts every URL.
	Loader ImageLoader

	// Concurrency bounds simultaneous probes. Values below 1 mean 1.
	Concurrency int

	// ImageTimeout bounds each probe. Zero means no per-image limit.
	ImageTimeout time.Duration

	// Logger receives per-image warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

func (o Options) placeholder() string {
	if o.PlaceholderURL == "" {
		return DefaultPlaceholderURL
	}
	return o.PlaceholderURL
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Card is the display form of one book.
type Card struct {
	Title       string
	Author      string
	PublishYear int

	// ImageSrc is the cover to show: the book's image, or the placeholder.
	ImageSrc string
	Alt      string

	// Fallback is true when ImageSrc is the placeholder.
	Fallback bool

	// Cover is set when the image was probed successfully.
	Cover *cover.Cover
}

// BuildCards returns one card per book, in the same order.
//
// Books without an ImageURL get the placeholder. When opts.Loader is set,
// every cover is probed concurrently; a cover that fails to load is swapped
// for the placeholder and a warning is logged. A failing cover never affects
// any other card. The placeholder itself is not retried.
func BuildCards(ctx context.Context, books []model.Book, opts Options) []Card {
	placeholder := opts.placeholder()
	cards := make([]Card, len(books))
	for i, b := range books {
		cards[i] = Card{
			Title:       b.Title,
			Author:      b.Author,
			PublishYear: b.PublishYear,
			ImageSrc:    b.ImageURL,
			Alt:         b.Alt(),
		}
		if !b.HasImage() {
			cards[i].ImageSrc = placeholder
			cards[i].Fallback = true
		}
	}

	if opts.Loader == nil {
		return cards
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	logger := opts.logger()

	var g errgroup.Group
	g.SetLimit(limit)
	for i := range cards {
		card := &cards[i]
		g.Go(func() error {
			c, err := probe(ctx, opts, card.ImageSrc)
			if err != nil {
				logger.WarnContext(ctx, "Failed to load image for "+card.Title, "url", card.ImageSrc, "err", err)
				card.ImageSrc = placeholder
				card.Fallback = true
				return nil
			}
			card.Cover = c
			return nil
		})
	}
	_ = g.Wait()

	return cards
}

func probe(ctx context.Context, opts Options, url string) (*cover.Cover, error) {
	if opts.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ImageTimeout)
		defer cancel()
	}
	return opts.Loader.Load(ctx, url)
}
