package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// Painter converts a Screen buffer to a styled string for one renderer.
// Each SSH session gets its own renderer so color support is detected
// per client.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Style]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

// Style returns the lipgloss style for a cell style.
func (p *Painter) Style(st core.Style) lipgloss.Style {
	if s, ok := p.styles[st]; ok {
		return s
	}

	s := p.renderer.NewStyle()
	if c, ok := palette[st.Color]; ok {
		s = s.Foreground(lipgloss.Color(c))
	}
	switch st.Attr {
	case core.AttrDim:
		s = s.Faint(true)
	case core.AttrBold:
		s = s.Bold(true)
	}

	p.styles[st] = s
	return s
}

// Paint renders the screen. Adjacent cells with the same style are
// grouped to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.StyleDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(start).Render(run.String()))
		}
	}
	return sb.String()
}
