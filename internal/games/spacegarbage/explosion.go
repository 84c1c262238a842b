package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

var explosionStyle = core.Style{Color: core.ColorOrange, Attr: core.AttrBold}

// explosion shows each frame for one step and erases it on the next,
// centered on (row, col). It finishes on the step that erases the last
// frame.
type explosion struct {
	g      *Game
	row    float64
	col    float64
	frames []core.Frame
	step   int
}

func newExplosion(g *Game, centerRow, centerCol float64) *explosion {
	return &explosion{
		g:      g,
		row:    centerRow,
		col:    centerCol,
		frames: g.catalog.Explosion,
	}
}

func (e *explosion) Step() bool {
	if len(e.frames) == 0 {
		return false
	}
	if e.step == 0 {
		e.g.play(SoundExplosion)
	}

	e.draw(e.frames[e.step/2], e.step%2 == 1)
	e.step++
	return e.step < 2*len(e.frames)
}

// erase removes the frame shown by the previous step, if any.
func (e *explosion) erase() {
	if e.step%2 == 1 {
		e.draw(e.frames[e.step/2], true)
	}
}

func (e *explosion) draw(f core.Frame, negative bool) {
	row := e.row - float64(f.Rows()/2)
	col := e.col - float64(f.Cols()/2)
	core.DrawFrame(e.g.surface, row, col, f, explosionStyle, negative)
}
