// Package console provides a tcell backend for space-garbage. It draws
// straight into the terminal cell buffer instead of rendering strings.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// colors maps core.Color to the terminal palette.
var colors = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.PaletteColor(1),
	core.ColorGreen:        tcell.PaletteColor(2),
	core.ColorYellow:       tcell.PaletteColor(3),
	core.ColorBlue:         tcell.PaletteColor(4),
	core.ColorMagenta:      tcell.PaletteColor(5),
	core.ColorCyan:         tcell.PaletteColor(6),
	core.ColorWhite:        tcell.PaletteColor(7),
	core.ColorBrightRed:    tcell.PaletteColor(9),
	core.ColorBrightYellow: tcell.PaletteColor(11),
	core.ColorBrightCyan:   tcell.PaletteColor(14),
	core.ColorBrightWhite:  tcell.PaletteColor(15),
	core.ColorOrange:       tcell.PaletteColor(208),
	core.ColorGray:         tcell.PaletteColor(245),
}

// Style converts a cell style to a tcell style.
func Style(st core.Style) tcell.Style {
	s := tcell.StyleDefault
	if c, ok := colors[st.Color]; ok {
		s = s.Foreground(c)
	}
	switch st.Attr {
	case core.AttrDim:
		s = s.Dim(true)
	case core.AttrBold:
		s = s.Bold(true)
	}
	return s
}

// Surface is a core.Surface backed by a tcell screen. Its size is fixed
// when it is created; a larger terminal just shows empty space around it.
type Surface struct {
	screen tcell.Screen
	rows   int
	cols   int
}

// NewSurface wraps screen with a rows x cols field.
func NewSurface(screen tcell.Screen, rows, cols int) *Surface {
	return &Surface{screen: screen, rows: rows, cols: cols}
}

// Place implements core.Surface.
func (s *Surface) Place(row, col int, r rune, st core.Style) {
	if !core.NewRect(0, 0, s.cols, s.rows).Contains(col, row) {
		return
	}
	if row == s.rows-1 && col == s.cols-1 {
		return
	}
	s.screen.SetContent(col, row, r, nil, Style(st))
}

// DrawBorder implements core.Surface.
func (s *Surface) DrawBorder() {
	right, bottom := s.cols-1, s.rows-1
	s.Place(0, 0, tcell.RuneULCorner, core.StyleDefault)
	s.Place(0, right, tcell.RuneURCorner, core.StyleDefault)
	s.Place(bottom, 0, tcell.RuneLLCorner, core.StyleDefault)
	s.Place(bottom, right, tcell.RuneLRCorner, core.StyleDefault)
	for x := 1; x < right; x++ {
		s.Place(0, x, tcell.RuneHLine, core.StyleDefault)
		s.Place(bottom, x, tcell.RuneHLine, core.StyleDefault)
	}
	for y := 1; y < bottom; y++ {
		s.Place(y, 0, tcell.RuneVLine, core.StyleDefault)
		s.Place(y, right, tcell.RuneVLine, core.StyleDefault)
	}
}

// Size implements core.Surface.
func (s *Surface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// Commit implements core.Surface by flushing the changed cells.
func (s *Surface) Commit() {
	s.screen.Show()
}
