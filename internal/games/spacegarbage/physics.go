package spacegarbage

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

// minSpeed is the magnitude below which a fading velocity snaps to zero.
const minSpeed = 0.1

// Player is the ship's kinematic state. Position is real-valued; drawing
// uses the rounded cell.
type Player struct {
	Row, Col       float64
	RowVel, ColVel float64
}

// Steer applies one tick of the rate-limited velocity controller and
// integrates the position, clamped so a frame of size frameRows x frameCols
// stays inside the bordered grid.
func (p *Player) Steer(c core.Controls, pc config.PlayerConfig, gridRows, gridCols, frameRows, frameCols int) {
	p.RowVel = updateSpeed(p.RowVel, c.RowDir, pc.RowSpeedLimit, pc.Acceleration, pc.Fading)
	p.ColVel = updateSpeed(p.ColVel, c.ColDir, pc.ColumnSpeedLimit, pc.Acceleration, pc.Fading)

	p.Row = core.ClampF(p.Row+p.RowVel, 1, math.Max(1, float64(gridRows-frameRows-1)))
	p.Col = core.ClampF(p.Col+p.ColVel, 1, math.Max(1, float64(gridCols-frameCols-1)))
}

// Box returns the ship's bounding box for a frame of the given size.
func (p Player) Box(frameRows, frameCols int) core.Rect {
	return core.NewRect(core.Round(p.Col), core.Round(p.Row), frameCols, frameRows)
}

// updateSpeed fades the speed, pushes it by accel toward dir (-1, 0, 1)
// and limits its magnitude. Speeds that fade below minSpeed stop.
func updateSpeed(speed float64, dir int, limit, accel, fading float64) float64 {
	limit = math.Abs(limit)
	speed *= fading

	switch {
	case dir > 0:
		speed += accel
	case dir < 0:
		speed -= accel
	}

	speed = core.ClampF(speed, -limit, limit)
	if math.Abs(speed) < minSpeed {
		speed = 0
	}
	return speed
}
