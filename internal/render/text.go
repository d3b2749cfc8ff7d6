package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/book-catalog/internal/cover"
)

// Card styles
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	labelStyle = lipgloss.NewStyle().Bold(true)

	imageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	fallbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))
)

// FormatCard renders a single card as a bordered terminal box of the given
// outer width. A width below 20 is raised to 20.
func FormatCard(c Card, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Author:") + " " + c.Author)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Published:") + " " + fmt.Sprint(c.PublishYear))
	b.WriteString("\n")

	img := c.ImageSrc
	if c.Fallback {
		b.WriteString(fallbackStyle.Render("Cover: placeholder"))
	} else {
		b.WriteString(imageStyle.Render("Cover: " + img))
	}
	if c.Cover != nil {
		b.WriteString(imageStyle.Render(fmt.Sprintf(" (%dx%d %s)", c.Cover.Width, c.Cover.Height, c.Cover.Format)))
	}

	info := b.String()
	if c.Cover != nil && c.Cover.Thumb != nil {
		info = lipgloss.JoinHorizontal(lipgloss.Top, cover.ANSI(c.Cover.Thumb), "  ", info)
	}

	// Width in lipgloss excludes the border.
	return cardStyle.Width(width - 2).Render(info)
}

// FormatCards renders cards one below the other.
func FormatCards(cards []Card, width int) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = FormatCard(c, width)
	}
	return strings.Join(parts, "\n")
}

// TextRenderer keeps the latest cards and writes them as terminal boxes.
// Each Render replaces the previous cards; WriteTo prints the current ones.
type TextRenderer struct {
	*RegionRenderer
	width int
}

// NewTextRenderer creates a TextRenderer formatting cards of the given width.
func NewTextRenderer(width int, opts Options) *TextRenderer {
	return &TextRenderer{
		RegionRenderer: NewRegionRenderer(NewRegion(DisplayID), opts),
		width:          width,
	}
}

// WriteTo writes the current cards to w. An empty region writes nothing.
func (r *TextRenderer) WriteTo(w io.Writer) (int64, error) {
	cards := r.Region().Cards()
	if len(cards) == 0 {
		return 0, nil
	}
	n, err := io.WriteString(w, FormatCards(cards, r.width)+"\n")
	return int64(n), err
}
