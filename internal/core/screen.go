package core

import (
	"strings"
)

// Surface is a fixed-size grid of styled characters that animation tasks
// draw on. Rows grow downward from (0, 0) at the top-left corner.
type Surface interface {
	// Place writes a character at the given cell.
	// Out-of-bounds cells and the bottom-right cell are ignored.
	Place(row, col int, r rune, st Style)

	// DrawBorder outlines the whole grid.
	DrawBorder()

	// Size returns the grid dimensions. They never change for a session.
	Size() (rows, cols int)

	// Commit publishes everything placed since the previous commit.
	Commit()
}

// Cell is a single styled character of a Screen.
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is an in-memory Surface.
// It decouples game rendering from the terminal: games draw into it and a
// platform backend turns committed frames into real output.
type Screen struct {
	width    int
	height   int
	cells    [][]Cell
	commits  int
	onCommit func(*Screen)
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// OnCommit registers a hook called after every Commit.
func (s *Screen) OnCommit(fn func(*Screen)) {
	s.onCommit = fn
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size implements Surface.
func (s *Screen) Size() (rows, cols int) {
	return s.height, s.width
}

// Commits returns how many frames have been committed.
func (s *Screen) Commits() int {
	return s.commits
}

// Commit implements Surface.
func (s *Screen) Commit() {
	s.commits++
	if s.onCommit != nil {
		s.onCommit(s)
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Place implements Surface. The bottom-right cell is reserved: writing
// there scrolls some terminals, so it is never written.
func (s *Screen) Place(row, col int, r rune, st Style) {
	if row == s.height-1 && col == s.width-1 {
		return
	}
	s.setCell(col, row, Cell{Rune: r, Style: st})
}

func (s *Screen) setCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the styled cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawBorder implements Surface using box-drawing characters.
func (s *Screen) DrawBorder() {
	s.DrawBox(NewRect(0, 0, s.width, s.height))
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Place(r.Y, r.X, '┌', StyleDefault)
	s.Place(r.Y, r.Right()-1, '┐', StyleDefault)
	s.Place(r.Bottom()-1, r.X, '└', StyleDefault)
	s.Place(r.Bottom()-1, r.Right()-1, '┘', StyleDefault)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Place(r.Y, x, '─', StyleDefault)
		s.Place(r.Bottom()-1, x, '─', StyleDefault)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Place(y, r.X, '│', StyleDefault)
		s.Place(y, r.Right()-1, '│', StyleDefault)
	}
}

// String converts the screen buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
