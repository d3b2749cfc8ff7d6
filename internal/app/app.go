// Package app assembles the catalog components from settings.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/handiism/book-catalog/internal/catalog"
	"github.com/handiism/book-catalog/internal/config"
	"github.com/handiism/book-catalog/internal/controller"
	"github.com/handiism/book-catalog/internal/cover"
	"github.com/handiism/book-catalog/internal/http"
	"github.com/handiism/book-catalog/internal/render"
)

// NewFetcher builds the books fetcher described by settings.
//
// A relative source_url such as "books.json" is resolved against
// image_base_url, which is also where the document's cover paths live.
func NewFetcher(s *config.Settings, logger *slog.Logger) (*catalog.Fetcher, error) {
	source, err := catalog.ResolveSource(s.ImageBaseURL, s.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("source url %q: %w", s.SourceURL, err)
	}
	client := http.NewClient(s.UserAgent, time.Duration(s.RequestTimeout))
	return catalog.NewFetcher(client, source, s.ImageBaseURL, logger), nil
}

// NewRenderOptions returns card options for settings. When probing is enabled
// a cover loader with its own paced, time-limited client is attached.
func NewRenderOptions(s *config.Settings, logger *slog.Logger) render.Options {
	opts := s.ToRenderOptions()
	opts.Logger = logger
	if s.ProbeImages {
		client := http.NewClient(s.UserAgent, 0).
			WithTimeout(time.Duration(s.ImageTimeout)).
			WithRateLimit(s.ImageRequestsPerSecond)
		opts.Loader = cover.NewLoader(client, s.ToCoverOptions())
	}
	return opts
}

// NewController wires a controller rendering into renderer.
func NewController(s *config.Settings, renderer render.Renderer, onStatus func(controller.StatusEvent), logger *slog.Logger) (*controller.Controller, error) {
	fetcher, err := NewFetcher(s, logger)
	if err != nil {
		return nil, err
	}
	return controller.New(
		controller.NewState(),
		fetcher,
		renderer,
		onStatus,
		controller.WithLogger(logger),
		controller.WithClassicCutoff(s.ClassicCutoffYear),
	), nil
}
