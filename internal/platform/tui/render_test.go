package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestPaintPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Place(0, 1, '*', core.StyleDefault)

	got := NewPainter(nil).Paint(s)
	if got != " *  \n    " {
		t.Errorf("Paint() = %q", got)
	}
}

func TestPaintStyledKeepsText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	s := core.NewScreen(5, 1)
	s.Place(0, 0, '+', core.Style{Color: core.ColorWhite, Attr: core.AttrDim})
	s.Place(0, 1, '+', core.Style{Color: core.ColorWhite, Attr: core.AttrBold})

	got := NewPainter(r).Paint(s)
	if !strings.Contains(got, "\x1b[") {
		t.Error("styled cells should produce escape sequences")
	}
	if plain := stripANSI(got); plain != "++   " {
		t.Errorf("visible text = %q", plain)
	}
}

func TestPainterCachesStyles(t *testing.T) {
	p := NewPainter(nil)
	st := core.Style{Color: core.ColorOrange, Attr: core.AttrBold}
	p.Style(st)
	p.Style(st)
	if len(p.styles) != 1 {
		t.Errorf("expected one cached style, got %d", len(p.styles))
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
