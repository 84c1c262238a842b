package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

var (
	flashStyle      = core.Style{Color: core.ColorBrightYellow, Attr: core.AttrBold}
	projectileStyle = core.Style{Color: core.ColorBrightCyan}
)

const (
	phaseFlash = iota
	phaseMuzzle
	phaseLaunch
	phaseFlight
)

// projectile flashes '*' then 'O' at the muzzle and then flies in a
// straight line until it leaves the field or hits an obstacle.
type projectile struct {
	g        *Game
	row      float64
	col      float64
	rowSpeed float64
	colSpeed float64
	symbol   rune
	phase    int
}

func newProjectile(g *Game, row, col float64) *projectile {
	symbol := '-'
	if g.cfg.Fire.RowSpeed != 0 {
		symbol = '|'
	}
	return &projectile{
		g:        g,
		row:      row,
		col:      col,
		rowSpeed: g.cfg.Fire.RowSpeed,
		colSpeed: g.cfg.Fire.ColumnSpeed,
		symbol:   symbol,
	}
}

func (p *projectile) Step() bool {
	s := p.g.surface
	r, c := core.Round(p.row), core.Round(p.col)

	switch p.phase {
	case phaseFlash:
		s.Place(r, c, '*', flashStyle)
		p.phase = phaseMuzzle
		return true
	case phaseMuzzle:
		s.Place(r, c, 'O', flashStyle)
		p.phase = phaseLaunch
		return true
	case phaseLaunch:
		p.g.play(SoundFire)
		p.phase = phaseFlight
	}

	s.Place(r, c, ' ', core.StyleDefault)
	p.row += p.rowSpeed
	p.col += p.colSpeed
	return p.fly()
}

// fly checks the new position and draws the projectile there.
func (p *projectile) fly() bool {
	rows, cols := p.g.surface.Size()
	if p.row <= 0 || p.row >= float64(rows-1) || p.col <= 0 || p.col >= float64(cols-1) {
		return false
	}

	r, c := core.Round(p.row), core.Round(p.col)
	if o := p.g.obstacles.Hit(core.PointRect(c, r)); o != nil {
		o.MarkCollision()
		return false
	}

	p.g.surface.Place(r, c, p.symbol, projectileStyle)
	return true
}

// erase clears the cell drawn by the previous step.
func (p *projectile) erase() {
	if p.phase != phaseFlash {
		p.g.surface.Place(core.Round(p.row), core.Round(p.col), ' ', core.StyleDefault)
	}
}
