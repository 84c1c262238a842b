package core

import (
	"math"
	"strings"
)

// Frame is an immutable multi-line block of characters.
// Spaces are transparent: they are never drawn and never erased.
type Frame struct {
	lines [][]rune
	rows  int
	cols  int
}

// NewFrame builds a frame from text, measuring its bounding size.
// Trailing line breaks do not add rows.
func NewFrame(text string) Frame {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return Frame{}
	}

	raw := strings.Split(text, "\n")
	f := Frame{lines: make([][]rune, len(raw)), rows: len(raw)}
	for i, line := range raw {
		f.lines[i] = []rune(strings.TrimRight(line, "\r"))
		f.cols = max(f.cols, len(f.lines[i]))
	}
	return f
}

// Size returns the frame's rows and columns.
func (f Frame) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Rows returns the number of lines in the frame.
func (f Frame) Rows() int {
	return f.rows
}

// Cols returns the width of the widest line.
func (f Frame) Cols() int {
	return f.cols
}

// Empty reports whether the frame has no content.
func (f Frame) Empty() bool {
	return f.rows == 0
}

// String returns the frame text.
func (f Frame) String() string {
	parts := make([]string, len(f.lines))
	for i, l := range f.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// Round converts a real-valued coordinate to its cell, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// DrawFrame draws a frame with its top-left corner at the rounded
// (row, col). With negative set, the same cells are overwritten with
// spaces, which erases a frame drawn earlier at the same position.
// Cells outside the surface are skipped.
func DrawFrame(s Surface, row, col float64, f Frame, st Style, negative bool) {
	rows, cols := s.Size()
	startRow, startCol := Round(row), Round(col)

	for i, line := range f.lines {
		y := startRow + i
		if y < 0 {
			continue
		}
		if y >= rows {
			break
		}
		for j, r := range line {
			x := startCol + j
			if x < 0 {
				continue
			}
			if x >= cols {
				break
			}
			if r == ' ' {
				continue
			}
			if negative {
				s.Place(y, x, ' ', StyleDefault)
			} else {
				s.Place(y, x, r, st)
			}
		}
	}
}

// DrawText writes a single line starting at (row, col) with clipping.
// Unlike frames, spaces in text are written so labels overwrite cleanly.
func DrawText(s Surface, row, col int, text string, st Style) {
	rows, cols := s.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, r := range []rune(text) {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= cols {
			break
		}
		s.Place(row, x, r, st)
	}
}
