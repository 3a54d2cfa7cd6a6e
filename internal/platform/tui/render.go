package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/settings"
)

// Renderer converts screen buffers to styled terminal output. The style
// table is built once per session from the player's theme and dino color;
// game logic only tags cells with palette entries.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds a renderer for the given background theme and
// player color. Unknown themes fall back to the plain palette.
func NewRenderer(theme, dinoColor string) *Renderer {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorRed:     fg("1"),
		core.ColorGreen:   fg("2"),
		core.ColorYellow:  fg("3"),
		core.ColorBlue:    fg("4"),
		core.ColorMagenta: fg("5"),
		core.ColorCyan:    fg("6"),
		core.ColorWhite:   fg("7"),
		core.ColorGray:    fg("245"),
		core.ColorOrange:  fg("208"),
	}

	switch theme {
	case "desert":
		styles[core.ColorGray] = fg("179") // sandy ground
		styles[core.ColorGreen] = fg("107")
	case "night":
		styles[core.ColorDefault] = fg("153")
		styles[core.ColorGray] = fg("60")
		styles[core.ColorGreen] = fg("22")
	case "neon":
		styles[core.ColorGray] = fg("201")
		styles[core.ColorGreen] = fg("46")
		styles[core.ColorOrange] = fg("51")
	}

	// The runner sprite takes the player's configured color.
	runner := dinoColor
	if runner == "" {
		runner = settings.Default("").DinoColor
	}
	styles[core.ColorRunner] = fg(runner)

	return &Renderer{styles: styles}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
