package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/handiism/book-catalog/internal/catalog"
	"github.com/handiism/book-catalog/internal/model"
	"github.com/handiism/book-catalog/internal/render"
)

// Status messages shown to the user.
const (
	MsgLoadFirst = "Please load books first!"
	MsgSorted    = "Books sorted by publication year!"
)

// ErrNotLoaded is returned by Sort and Filter while no books are held.
var ErrNotLoaded = errors.New("no books loaded")

// StatusLevel indicates the kind of a status message.
type StatusLevel int

const (
	LevelInfo StatusLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l StatusLevel) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Action is one of the user-triggered operations.
type Action int

const (
	ActionLoad Action = iota
	ActionSort
	ActionFilter
)

func (a Action) String() string {
	switch a {
	case ActionLoad:
		return "load"
	case ActionSort:
		return "sort"
	case ActionFilter:
		return "filter"
	}
	return "unknown"
}

// StatusEvent is one update of the status line.
type StatusEvent struct {
	Message string
	Level   StatusLevel
}

// Fetcher produces the book list. *catalog.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Book, error)
}

// Controller wires the load, sort and filter actions to a fetcher and a
// renderer.
type Controller struct {
	state    *State
	fetcher  Fetcher
	renderer render.Renderer
	onStatus func(StatusEvent)
	logger   *slog.Logger
	cutoff   int

	loads   singleflight.Group
	loading atomic.Bool

	// act serializes actions from reading the held list to setting the status.
	act sync.Mutex

	mu     sync.RWMutex
	status StatusEvent
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClassicCutoff changes the year Filter keeps books strictly before.
func WithClassicCutoff(year int) Option {
	return func(c *Controller) {
		c.cutoff = year
	}
}

// New creates a Controller.
//
// onStatus may be nil; the latest status is always available from Status.
func New(state *State, fetcher Fetcher, renderer render.Renderer, onStatus func(StatusEvent), opts ...Option) *Controller {
	c := &Controller{
		state:    state,
		fetcher:  fetcher,
		renderer: renderer,
		onStatus: onStatus,
		logger:   slog.Default(),
		cutoff:   catalog.ClassicCutoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the state the controller reads and replaces.
func (c *Controller) State() *State {
	return c.state
}

// Status returns the latest status message.
func (c *Controller) Status() StatusEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Loading reports whether a Load is outstanding.
func (c *Controller) Loading() bool {
	return c.loading.Load()
}

// Apply runs one action and returns the status it produced.
//
// Actions never interleave: each one reads the held list, renders and sets
// its status before the next begins, so the display always matches the
// order the actions were started in. onStatus is called while the action is
// still in progress and must not call back into the controller.
func (c *Controller) Apply(ctx context.Context, action Action) (StatusEvent, error) {
	switch action {
	case ActionLoad:
		return c.load(ctx)
	case ActionSort:
		return c.serialize(func() (StatusEvent, error) { return c.sort(ctx) })
	case ActionFilter:
		return c.serialize(func() (StatusEvent, error) { return c.filter(ctx) })
	}
	return StatusEvent{}, fmt.Errorf("unknown action %d", int(action))
}

// Load fetches the books, replaces the held list and renders it.
//
// On failure the held list is left as it was, the status reads
// "Error: <detail>" and the error is returned. Calls made while a load is
// outstanding join it instead of issuing another fetch; they share its
// outcome, including the context of the first caller.
func (c *Controller) Load(ctx context.Context) error {
	_, err := c.Apply(ctx, ActionLoad)
	return err
}

// Sort renders the held list ordered by publication year.
//
// The held list itself is not reordered. With nothing loaded the status asks
// the user to load first and ErrNotLoaded is returned without rendering.
func (c *Controller) Sort(ctx context.Context) error {
	_, err := c.Apply(ctx, ActionSort)
	return err
}

// Filter renders the classics from the held list.
//
// Like Sort, it never modifies the held list and returns ErrNotLoaded when
// nothing is held.
func (c *Controller) Filter(ctx context.Context) error {
	_, err := c.Apply(ctx, ActionFilter)
	return err
}

func (c *Controller) serialize(fn func() (StatusEvent, error)) (StatusEvent, error) {
	c.act.Lock()
	defer c.act.Unlock()
	return fn()
}

func (c *Controller) load(ctx context.Context) (StatusEvent, error) {
	v, err, shared := c.loads.Do("load", func() (any, error) {
		c.loading.Store(true)
		defer c.loading.Store(false)
		ev, err := c.serialize(func() (StatusEvent, error) { return c.fetchAndRender(ctx) })
		return ev, err
	})
	if shared {
		c.logger.DebugContext(ctx, "Joined outstanding load")
	}
	ev, _ := v.(StatusEvent)
	return ev, err
}

func (c *Controller) fetchAndRender(ctx context.Context) (StatusEvent, error) {
	books, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return c.fail(err), err
	}

	if err := c.renderer.Render(ctx, books); err != nil {
		err = fmt.Errorf("render: %w", err)
		return c.fail(err), err
	}
	c.state.Replace(books)

	return c.setStatus(StatusEvent{Message: fmt.Sprintf("Loaded %d books successfully!", len(books)), Level: LevelSuccess}), nil
}

func (c *Controller) sort(ctx context.Context) (StatusEvent, error) {
	books := c.state.Books()
	if len(books) == 0 {
		return c.setStatus(StatusEvent{Message: MsgLoadFirst, Level: LevelWarning}), ErrNotLoaded
	}

	if err := c.renderer.Render(ctx, catalog.SortByYear(books)); err != nil {
		err = fmt.Errorf("render: %w", err)
		return c.fail(err), err
	}
	return c.setStatus(StatusEvent{Message: MsgSorted, Level: LevelSuccess}), nil
}

func (c *Controller) filter(ctx context.Context) (StatusEvent, error) {
	books := c.state.Books()
	if len(books) == 0 {
		return c.setStatus(StatusEvent{Message: MsgLoadFirst, Level: LevelWarning}), ErrNotLoaded
	}

	classics := c.classics(books)
	if err := c.renderer.Render(ctx, classics); err != nil {
		err = fmt.Errorf("render: %w", err)
		return c.fail(err), err
	}
	return c.setStatus(StatusEvent{Message: fmt.Sprintf("Found %d classic books!", len(classics)), Level: LevelSuccess}), nil
}

func (c *Controller) classics(books []model.Book) []model.Book {
	if c.cutoff == catalog.ClassicCutoff {
		return catalog.FilterClassics(books)
	}
	return catalog.FilterBefore(books, c.cutoff)
}

func (c *Controller) fail(err error) StatusEvent {
	return c.setStatus(StatusEvent{Message: "Error: " + err.Error(), Level: LevelError})
}

func (c *Controller) setStatus(ev StatusEvent) StatusEvent {
	c.mu.Lock()
	c.status = ev
	c.mu.Unlock()

	c.logger.Debug("Status", "level", ev.Level, "message", ev.Message)
	if c.onStatus != nil {
		c.onStatus(ev)
	}
	return ev
}
