package spacegarbage

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestUpdateSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		dir      int
		expected float64
	}{
		{"accelerate from rest", 0, 1, 0.75},
		{"accelerate backwards", 0, -1, -0.75},
		{"fade without input", 1, 0, 0.8},
		{"limit forward", 2, 1, 2},
		{"limit backwards", -2, -1, -2},
		{"snap to zero", 0.1, 0, 0},
		{"reverse snaps to zero", 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := updateSpeed(tt.speed, tt.dir, 2, 0.75, 0.8)
			if got != tt.expected {
				t.Errorf("updateSpeed(%g, %d) = %g, expected %g", tt.speed, tt.dir, got, tt.expected)
			}
		})
	}
}

func TestSteerClampsToField(t *testing.T) {
	pc := config.DefaultConfig().Player
	p := Player{Row: 5, Col: 5}

	for i := 0; i < 50; i++ {
		p.Steer(core.Controls{RowDir: -1, ColDir: -1}, pc, 24, 80, 9, 5)
	}
	if p.Row != 1 || p.Col != 1 {
		t.Errorf("expected (1, 1) at the top-left limit, got (%g, %g)", p.Row, p.Col)
	}

	for i := 0; i < 100; i++ {
		p.Steer(core.Controls{RowDir: 1, ColDir: 1}, pc, 24, 80, 9, 5)
	}
	if p.Row != 14 || p.Col != 74 {
		t.Errorf("expected (14, 74) at the bottom-right limit, got (%g, %g)", p.Row, p.Col)
	}
}

func TestSpriteCycle(t *testing.T) {
	a, b := core.NewFrame("A"), core.NewFrame("B")
	s := NewSpriteCycle([2]core.Frame{a, b})

	var got string
	for i := 0; i < 6; i++ {
		got += s.Next().String()
	}
	if got != "AABBAA" {
		t.Errorf("cycle = %q, expected AABBAA", got)
	}
}

func TestObstacleSet(t *testing.T) {
	s := NewObstacleSet()
	a := s.Register(core.NewRect(0, 0, 3, 3))
	b := s.Register(core.NewRect(2, 2, 3, 3))

	if a.ID == b.ID {
		t.Error("obstacle IDs should be unique")
	}
	if hit := s.Hit(core.PointRect(2, 2)); hit != a {
		t.Errorf("Hit should return the first registered obstacle, got %+v", hit)
	}

	a.MarkCollision()
	if hit := s.Hit(core.PointRect(2, 2)); hit != b {
		t.Error("Hit should skip obstacles already marked")
	}

	s.Remove(b)
	s.Remove(b)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if hit := s.Hit(core.PointRect(4, 4)); hit != nil {
		t.Error("removed obstacle should not be hit")
	}

	s.Clear()
	if s.Len() != 0 || len(s.Boxes()) != 0 {
		t.Error("Clear should drop every obstacle")
	}
}

func TestScatterStars(t *testing.T) {
	cfg := config.DefaultConfig().Stars
	cfg.Count = 50
	cfg.MaxDelay = 1
	scr := core.NewScreen(30, 12)

	stars := scatterStars(scr, rand.New(rand.NewSource(1)), cfg)
	if len(stars) != 50 {
		t.Fatalf("expected 50 stars, got %d", len(stars))
	}
	// One step of delay, one step to draw.
	for _, s := range stars {
		s.Step()
		s.Step()
	}

	drawn := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) == ' ' {
				continue
			}
			if y == 0 || x == 0 || y == scr.Height()-1 || x == scr.Width()-1 {
				t.Errorf("star on the border at (%d, %d)", x, y)
			}
			drawn++
		}
	}
	if drawn != 50 {
		t.Errorf("expected 50 distinct star cells, got %d", drawn)
	}
}

func TestScatterStarsCapsAtInterior(t *testing.T) {
	cfg := config.DefaultConfig().Stars
	cfg.Count = 1000
	scr := core.NewScreen(12, 7)

	stars := scatterStars(scr, rand.New(rand.NewSource(1)), cfg)
	if len(stars) != 10*5 {
		t.Errorf("expected stars capped at 50 interior cells, got %d", len(stars))
	}
}

func TestStarBlinkPattern(t *testing.T) {
	cfg := config.StarsConfig{DimTicks: 2, NormalTicks: 1, BoldTicks: 1}
	scr := core.NewScreen(5, 5)
	star := newStar(scr, 2, 2, '*', 1, cfg)

	if !star.Step() {
		t.Fatal("star should not finish during its delay")
	}
	if scr.Get(2, 2) != ' ' {
		t.Error("star drawn during its delay")
	}

	expected := []core.Attr{
		core.AttrDim, core.AttrDim, core.AttrNormal, core.AttrBold, core.AttrNormal,
		core.AttrDim, core.AttrDim,
	}
	for i, attr := range expected {
		if !star.Step() {
			t.Fatal("star should blink forever")
		}
		if got := scr.GetCell(2, 2).Style.Attr; got != attr {
			t.Errorf("step %d: attr = %v, expected %v", i, got, attr)
		}
	}
}

func TestClock(t *testing.T) {
	e := NewEpoch(1957)
	c := &clock{epoch: e, every: 9}

	for i := 0; i < 18; i++ {
		c.Step()
	}
	if e.Year() != 1959 {
		t.Errorf("year = %d after 18 steps, expected 1959", e.Year())
	}
}

func TestDebrisTerminates(t *testing.T) {
	g, scr := newTestGame(t, 80, 24, config.DefaultConfig())
	d := newDebris(g, g.catalog.Garbage[0], 10)

	bound := int(float64(scr.Height())/g.cfg.Debris.Speed) + 2
	steps := 0
	for d.Step() {
		steps++
		if steps > bound {
			t.Fatalf("debris still falling after %d steps", steps)
		}
	}
	if g.obstacles.Len() != 0 {
		t.Errorf("finished debris left %d obstacles behind", g.obstacles.Len())
	}
}

func TestDebrisExplodesWhenHit(t *testing.T) {
	g, _ := newTestGame(t, 80, 24, config.DefaultConfig())
	d := newDebris(g, g.catalog.Garbage[0], 10)

	d.Step()
	if d.obstacle == nil {
		t.Fatal("debris should register its obstacle")
	}
	d.obstacle.MarkCollision()

	steps := 1
	for d.Step() {
		steps++
	}
	if expected := 2 * len(g.catalog.Explosion); steps != expected {
		t.Errorf("explosion took %d steps, expected %d", steps, expected)
	}
	if g.Summary().Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected 1", g.Summary().Destroyed)
	}
	if g.obstacles.Len() != 0 {
		t.Error("exploded debris should not keep its obstacle")
	}
}

func TestProjectileHitsObstacle(t *testing.T) {
	g, _ := newTestGame(t, 80, 24, config.DefaultConfig())
	o := g.obstacles.Register(core.NewRect(8, 10, 5, 2))
	p := newProjectile(g, 20, 10)

	steps := 0
	for p.Step() {
		steps++
		if steps > 100 {
			t.Fatal("projectile never stopped")
		}
	}
	if !o.Collision {
		t.Error("projectile should mark the obstacle it hits")
	}
}

func TestProjectileLeavesField(t *testing.T) {
	g, scr := newTestGame(t, 80, 24, config.DefaultConfig())
	p := newProjectile(g, 20, 10)

	if !p.Step() || scr.Get(10, 20) != '*' {
		t.Error("first step should flash '*'")
	}
	if !p.Step() || scr.Get(10, 20) != 'O' {
		t.Error("second step should flash 'O'")
	}

	steps := 2
	for p.Step() {
		steps++
		if steps > 100 {
			t.Fatal("projectile never left the field")
		}
	}
	for y := 1; y < scr.Height()-1; y++ {
		if r := scr.Get(10, y); r == '|' || r == 'O' {
			t.Errorf("projectile trail left at row %d: %q", y, r)
		}
	}
}

// blankRegion reports whether rows [top, bottom) and columns [left, right)
// hold only spaces.
func blankRegion(scr *core.Screen, top, bottom, left, right int) bool {
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if scr.Get(x, y) != ' ' {
				return false
			}
		}
	}
	return true
}

func TestExplosionErase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stars.Count = 0
	g, scr := newTestGame(t, 80, 24, cfg)
	e := newExplosion(g, 4, 60)

	e.erase()
	if !blankRegion(scr, 1, 12, 45, 75) {
		t.Fatal("erase before the first step should draw nothing")
	}

	e.Step()
	if blankRegion(scr, 1, 12, 45, 75) {
		t.Fatal("first step should draw a frame")
	}
	e.erase()
	if !blankRegion(scr, 1, 12, 45, 75) {
		t.Error("erase should remove the frame on screen")
	}
}

func TestProjectileErase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stars.Count = 0
	g, scr := newTestGame(t, 80, 24, cfg)
	p := newProjectile(g, 20, 70)

	for i := 0; i < 4; i++ {
		p.Step()
		p.erase()
		if !blankRegion(scr, 1, 23, 65, 75) {
			t.Fatalf("step %d: projectile left a mark after erase", i)
		}
	}
}
