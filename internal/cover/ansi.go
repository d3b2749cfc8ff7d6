package cover

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// ANSI renders img as rows of upper-half-block cells, two pixel rows per
// text line. The top pixel sets the foreground colour and the bottom pixel
// the background.
func ANSI(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hex(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hex(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
