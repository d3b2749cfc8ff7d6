// Package tui provides a Bubble Tea terminal user interface for the book catalog.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/book-catalog/internal/app"
	"github.com/handiism/book-catalog/internal/config"
	"github.com/handiism/book-catalog/internal/controller"
	"github.com/handiism/book-catalog/internal/render"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// Lines taken by the header, status line and footer around the viewport.
const chromeHeight = 6

// Message types
type (
	// ActionDoneMsg is sent when a controller action returns.
	ActionDoneMsg struct {
		Action controller.Action
		Status controller.StatusEvent
		Err    error
	}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctrl   *controller.Controller
	region *render.Region

	spinner  spinner.Model
	viewport viewport.Model

	status  controller.StatusEvent
	loading bool
	shown   int // region version currently in the viewport

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model driving ctrl, whose renderer fills region.
func NewModel(ctrl *controller.Controller, region *render.Region) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		ctrl:     ctrl,
		region:   region,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		status:   controller.StatusEvent{Message: "Press l to load books.", Level: controller.LevelInfo},
		ctx:      ctx,
		cancel:   cancel,
		shown:    -1,
		width:    80,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.shown = -1
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			return m, tea.Quit

		case "l":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.run(controller.ActionLoad), m.spinner.Tick)

		case "s":
			if m.loading {
				return m, nil
			}
			return m, m.run(controller.ActionSort)

		case "f":
			if m.loading {
				return m, nil
			}
			return m, m.run(controller.ActionFilter)
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case ActionDoneMsg:
		if msg.Action == controller.ActionLoad {
			m.loading = false
		}
		m.status = msg.Status
		m.refresh()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh copies the region into the viewport when it changed.
func (m *Model) refresh() {
	version := m.region.Version()
	if version == m.shown {
		return
	}
	m.shown = version

	cards := m.region.Cards()
	switch {
	case version == 0:
		m.viewport.SetContent(dimStyle.Render("No books loaded yet."))
	case len(cards) == 0:
		m.viewport.SetContent(dimStyle.Render("No books to show."))
	default:
		m.viewport.SetContent(render.FormatCards(cards, m.width))
	}
	m.viewport.GotoTop()
}

// run calls the controller in the background.
func (m Model) run(action controller.Action) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		status, err := ctrl.Apply(ctx, action)
		return ActionDoneMsg{Action: action, Status: status, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📚 Book Catalog"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d books held", m.ctrl.State().Len())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading books..."))
	} else {
		b.WriteString(renderStatus(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func renderStatus(ev controller.StatusEvent) string {
	var style lipgloss.Style
	prefix := "›"
	switch ev.Level {
	case controller.LevelError:
		style = errorStyle
		prefix = "✗"
	case controller.LevelWarning:
		style = warningStyle
		prefix = "!"
	case controller.LevelSuccess:
		style = successStyle
		prefix = "✓"
	default:
		style = infoStyle
	}
	return style.Render(prefix + " " + ev.Message)
}

func (m Model) helpText() string {
	if m.loading {
		return "↑/↓: scroll • q: quit"
	}
	return "l: load • s: sort by year • f: classics • ↑/↓: scroll • q: quit"
}

// Run starts the TUI application.
//
// Logs go to logger, which should not write to the terminal the program owns.
func Run(settings *config.Settings, logger *slog.Logger) error {
	region := render.NewRegion(render.DisplayID)
	renderer := render.NewRegionRenderer(region, app.NewRenderOptions(settings, logger))

	ctrl, err := app.NewController(settings, renderer, nil, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(ctrl, region), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
