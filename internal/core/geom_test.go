package core

import "testing"

func TestRectIntersects(t *testing.T) {
	ship := NewRect(10, 5, 5, 9) // col 10, row 5, 5 cols x 9 rows

	tests := []struct {
		name string
		b    Rect
		hit  bool
	}{
		{"debris over the nose", NewRect(11, 2, 3, 4), true},
		{"debris just above", NewRect(11, 1, 3, 4), false},
		{"debris touching left side", NewRect(6, 8, 4, 2), false},
		{"debris one cell into left side", NewRect(7, 8, 4, 2), true},
		{"debris under the tail", NewRect(10, 14, 5, 3), false},
		{"tiny debris inside", NewRect(12, 9, 1, 1), true},
		{"wide debris spanning the ship", NewRect(0, 7, 40, 2), true},
		{"point on top-left cell", PointRect(10, 5), true},
		{"point on exclusive right edge", PointRect(15, 5), false},
		{"point on last row", PointRect(14, 13), true},
		{"point below", PointRect(14, 14), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ship.Intersects(tc.b); got != tc.hit {
				t.Errorf("ship.Intersects(%+v) = %v, expected %v", tc.b, got, tc.hit)
			}
			if got := tc.b.Intersects(ship); got != tc.hit {
				t.Errorf("%+v.Intersects(ship) = %v, expected %v", tc.b, got, tc.hit)
			}
		})
	}
}

func TestPointIntersectsPoint(t *testing.T) {
	if !PointRect(4, 4).Intersects(PointRect(4, 4)) {
		t.Error("a point should hit itself")
	}
	if PointRect(4, 4).Intersects(PointRect(4, 5)) {
		t.Error("distinct points should not hit")
	}
}

func TestRectIntersectsSymmetric(t *testing.T) {
	for ax := -2; ax <= 2; ax++ {
		for ay := -2; ay <= 2; ay++ {
			for w := 0; w <= 3; w++ {
				for h := 0; h <= 3; h++ {
					a := NewRect(ax, ay, w, h)
					b := NewRect(0, 0, 2, 1)
					if a.Intersects(b) != b.Intersects(a) {
						t.Fatalf("asymmetric result for %+v and %+v", a, b)
					}
				}
			}
		}
	}
}

func TestRectDisjointRowsNeverCollide(t *testing.T) {
	a := NewRect(0, 0, 50, 3)
	for y := 3; y < 10; y++ {
		for x := -10; x < 60; x++ {
			b := NewRect(x, y, 5, 2)
			if a.Intersects(b) {
				t.Fatalf("rows [0,3) and [%d,%d) should not collide (col %d)", y, y+2, x)
			}
		}
	}

	// And symmetrically for columns
	c := NewRect(0, 0, 3, 50)
	for x := 3; x < 10; x++ {
		if c.Intersects(NewRect(x, 10, 2, 2)) {
			t.Fatalf("cols [0,3) and [%d,%d) should not collide", x, x+2)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	for _, p := range [][2]int{{15, 15}, {10, 10}, {29, 24}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{30, 25}, {5, 15}, {35, 15}, {15, 5}, {15, 30}} {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
