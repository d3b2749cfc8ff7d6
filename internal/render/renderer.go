package render

import (
	"context"
	"sync"

	"github.com/handiism/book-catalog/internal/model"
)

// Renderer displays a list of books, replacing whatever it showed before.
type Renderer interface {
	Render(ctx context.Context, books []model.Book) error
}

// Region is the display area cards are rendered into.
//
// Region is safe for concurrent use: renders may happen on a background
// goroutine while a UI reads the current cards.
type Region struct {
	id string

	mu      sync.RWMutex
	cards   []Card
	version int
}

// NewRegion creates an empty region identified by id.
func NewRegion(id string) *Region {
	return &Region{id: id}
}

// ID returns the region identifier.
func (r *Region) ID() string {
	return r.id
}

// Replace clears the region and fills it with cards.
func (r *Region) Replace(cards []Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = append([]Card(nil), cards...)
	r.version++
}

// Cards returns a copy of the cards currently shown.
func (r *Region) Cards() []Card {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Card(nil), r.cards...)
}

// Version increases by one on every Replace.
func (r *Region) Version() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// RegionRenderer builds cards and stores them in a Region.
type RegionRenderer struct {
	region *Region
	opts   Options
}

// NewRegionRenderer creates a renderer filling region.
func NewRegionRenderer(region *Region, opts Options) *RegionRenderer {
	return &RegionRenderer{region: region, opts: opts}
}

// Region returns the region this renderer fills.
func (r *RegionRenderer) Region() *Region {
	return r.region
}

// Render implements Renderer.
func (r *RegionRenderer) Render(ctx context.Context, books []model.Book) error {
	r.region.Replace(BuildCards(ctx, books, r.opts))
	return nil
}

// Recorder is a Renderer that only remembers what it was asked to show.
type Recorder struct {
	mu    sync.Mutex
	calls [][]model.Book
	Err   error
}

// Render implements Renderer.
func (r *Recorder) Render(_ context.Context, books []model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, model.Clone(books))
	return r.Err
}

// Calls returns every list passed to Render, oldest first.
func (r *Recorder) Calls() [][]model.Book {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]model.Book(nil), r.calls...)
}

// Last returns the most recent list and whether any render happened.
func (r *Recorder) Last() ([]model.Book, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil, false
	}
	return r.calls[len(r.calls)-1], true
}
