package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

var shipStyle = core.Style{Color: core.ColorBrightWhite, Attr: core.AttrBold}

// ship draws the player's frame each tick, erasing the previous one first.
// It is also the only place that tests the ship against obstacles and
// launches projectiles.
type ship struct {
	g     *Game
	drawn bool
	row   float64
	col   float64
	frame core.Frame
}

func (s *ship) Step() bool {
	g := s.g
	if s.drawn {
		core.DrawFrame(g.surface, s.row, s.col, s.frame, shipStyle, true)
		s.drawn = false
	}

	frame := g.shipFrame
	if g.obstacles.Hit(g.player.Box(frame.Rows(), frame.Cols())) != nil {
		g.lose()
		return false
	}

	if g.fireRequested {
		g.fireRequested = false
		g.shots++
		g.sched.Add(newProjectile(g, g.player.Row, g.player.Col+float64(frame.Cols()/2)))
	}

	s.row, s.col, s.frame = g.player.Row, g.player.Col, frame
	core.DrawFrame(g.surface, s.row, s.col, s.frame, shipStyle, false)
	s.drawn = true
	return true
}

var gameOverStyle = core.Style{Color: core.ColorBrightRed, Attr: core.AttrBold}

// gameOver keeps the game over banner centered on the field.
type gameOver struct {
	g *Game
}

func (o *gameOver) Step() bool {
	rows, cols := o.g.surface.Size()
	f := o.g.catalog.GameOver
	row := float64((rows - f.Rows()) / 2)
	col := float64((cols - f.Cols()) / 2)
	core.DrawFrame(o.g.surface, row, col, f, gameOverStyle, false)
	return true
}
