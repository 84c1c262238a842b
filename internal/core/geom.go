// Package core provides the render surface, frames, geometry and input
// primitives shared by the game and the display backends.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box on the character grid.
// X is the column, Y is the row. A zero width or height makes the box
// degenerate along that axis: it then covers exactly its start coordinate,
// which is how point queries (projectiles) are expressed.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// PointRect returns a zero-size box at (x, y).
func PointRect(x, y int) Rect {
	return Rect{X: x, Y: y}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Boxes are separated when one lies entirely above, below, left or right
// of the other. Zero-size axes are treated as single points.
func (r Rect) Intersects(other Rect) bool {
	if !spansOverlap(r.X, r.W, other.X, other.W) {
		return false
	}
	return spansOverlap(r.Y, r.H, other.Y, other.H)
}

// spansOverlap tests [a, a+alen) against [b, b+blen) where a zero length
// means the single coordinate itself.
func spansOverlap(a, alen, b, blen int) bool {
	switch {
	case alen <= 0 && blen <= 0:
		return a == b
	case alen <= 0:
		return b <= a && a < b+blen
	case blen <= 0:
		return a <= b && b < a+alen
	default:
		return a < b+blen && b < a+alen
	}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return r.Intersects(PointRect(x, y))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
