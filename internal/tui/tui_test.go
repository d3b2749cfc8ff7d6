package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/book-catalog/internal/catalog"
	"github.com/handiism/book-catalog/internal/controller"
	"github.com/handiism/book-catalog/internal/logging"
	"github.com/handiism/book-catalog/internal/model"
	"github.com/handiism/book-catalog/internal/render"
)

type stubFetcher struct {
	books []model.Book
	err   error
}

func (f stubFetcher) Fetch(context.Context) ([]model.Book, error) {
	return model.Clone(f.books), f.err
}

func newTestModel(f controller.Fetcher) Model {
	region := render.NewRegion(render.DisplayID)
	ctrl := controller.New(
		controller.NewState(),
		f,
		render.NewRegionRenderer(region, render.Options{Logger: logging.Discard()}),
		nil,
		controller.WithLogger(logging.Discard()),
	)
	return NewModel(ctrl, region)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and feeds every resulting ActionDoneMsg back into the model.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(Model)
	for _, msg := range collect(cmd) {
		if done, ok := msg.(ActionDoneMsg); ok {
			next, _ = m.Update(done)
			m = next.(Model)
		}
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

var books = []model.Book{
	{Title: "Dune", Author: "Frank Herbert", PublishYear: 1965, ImageURL: "https://example.com/dune.jpg"},
	{Title: "1984", Author: "George Orwell", PublishYear: 1949},
}

func TestSortBeforeLoad(t *testing.T) {
	m := press(t, newTestModel(stubFetcher{books: books}), key("s"))

	if m.status.Message != controller.MsgLoadFirst {
		t.Errorf("status = %q, want %q", m.status.Message, controller.MsgLoadFirst)
	}
	if m.status.Level != controller.LevelWarning {
		t.Errorf("level = %v, want warning", m.status.Level)
	}
	if !strings.Contains(m.View(), "No books loaded yet.") {
		t.Errorf("view should show the empty hint:\n%s", m.View())
	}
}

func TestLoadThenFilter(t *testing.T) {
	m := press(t, newTestModel(stubFetcher{books: books}), key("l"))

	if m.loading {
		t.Fatal("loading should be cleared after the load finishes")
	}
	if m.status.Message != "Loaded 2 books successfully!" {
		t.Errorf("status = %q", m.status.Message)
	}
	view := m.View()
	for _, want := range []string{"Dune", "1984", "2 books held"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, key("f"))
	if m.status.Message != "Found 1 classic books!" {
		t.Errorf("status = %q", m.status.Message)
	}
	view = m.View()
	if strings.Contains(view, "Dune") {
		t.Error("filtered view should not contain Dune")
	}
	if !strings.Contains(view, "1984") {
		t.Error("filtered view should contain 1984")
	}
}

func TestActionsIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(stubFetcher{books: books})

	next, cmd := m.Update(key("l"))
	m = next.(Model)
	if !m.loading || cmd == nil {
		t.Fatal("first l should start a load")
	}

	for _, k := range []string{"l", "s", "f"} {
		next, cmd = m.Update(key(k))
		m = next.(Model)
		if cmd != nil {
			t.Errorf("%s should be ignored while loading", k)
		}
	}
	if !strings.Contains(m.View(), "Loading books...") {
		t.Error("view should show the loading indicator")
	}
}

func TestLoadFailureShowsError(t *testing.T) {
	m := press(t, newTestModel(stubFetcher{err: &catalog.FetchError{StatusCode: 500}}), key("l"))

	if m.status.Level != controller.LevelError {
		t.Errorf("level = %v, want error", m.status.Level)
	}
	if !strings.Contains(m.View(), "Error: HTTP error! status: 500") {
		t.Errorf("view missing error status:\n%s", m.View())
	}
}

func TestActionDoneCarriesError(t *testing.T) {
	m := newTestModel(stubFetcher{err: errors.New("offline")})
	msgs := collect(m.run(controller.ActionLoad))
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	done := msgs[0].(ActionDoneMsg)
	if done.Err == nil || done.Action != controller.ActionLoad {
		t.Errorf("unexpected message %+v", done)
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", key("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(stubFetcher{})
			_, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
			if m.ctx.Err() == nil {
				t.Error("context should be cancelled on quit")
			}
		})
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(stubFetcher{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.viewport.Width != 100 || m.viewport.Height != 40-chromeHeight {
		t.Errorf("viewport = %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

