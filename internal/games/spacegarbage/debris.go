package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

var debrisStyle = core.Style{Color: core.ColorGray}

// debris falls straight down from the top of the field. While it is drawn
// it owns exactly one obstacle. Once a projectile marks that obstacle the
// debris turns into an explosion in place.
type debris struct {
	g        *Game
	frame    core.Frame
	row      float64
	col      float64
	speed    float64
	obstacle *Obstacle
	boom     *explosion
}

func newDebris(g *Game, frame core.Frame, col int) *debris {
	return &debris{
		g:     g,
		frame: frame,
		col:   float64(col),
		speed: g.cfg.Debris.Speed,
	}
}

func (d *debris) Step() bool {
	if d.boom != nil {
		return d.boom.Step()
	}

	if d.obstacle != nil {
		core.DrawFrame(d.g.surface, d.row, d.col, d.frame, debrisStyle, true)
		d.g.obstacles.Remove(d.obstacle)

		if d.obstacle.Collision {
			d.obstacle = nil
			d.g.destroyed++
			d.boom = newExplosion(d.g,
				d.row+float64(d.frame.Rows()/2),
				d.col+float64(d.frame.Cols()/2))
			return d.boom.Step()
		}
		d.obstacle = nil
		d.row += d.speed
	}

	rows, _ := d.g.surface.Size()
	if d.row >= float64(rows) {
		return false
	}

	core.DrawFrame(d.g.surface, d.row, d.col, d.frame, debrisStyle, false)
	d.obstacle = d.g.obstacles.Register(d.box())
	return true
}

func (d *debris) box() core.Rect {
	return core.NewRect(core.Round(d.col), core.Round(d.row), d.frame.Cols(), d.frame.Rows())
}

func (d *debris) erase() {
	switch {
	case d.boom != nil:
		d.boom.erase()
	case d.obstacle != nil:
		core.DrawFrame(d.g.surface, d.row, d.col, d.frame, debrisStyle, true)
	}
}
