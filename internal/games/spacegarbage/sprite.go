package spacegarbage

import "github.com/vovakirdan/space-garbage/internal/core"

// holdTicks is how many consecutive ticks each thrust frame is shown.
const holdTicks = 2

// SpriteCycle yields the ship frames in a fixed pattern: each of the two
// frames is held for two ticks. It is consumed once per tick by the main
// loop and never draws anything itself.
type SpriteCycle struct {
	frames [2]core.Frame
	step   int
}

// NewSpriteCycle creates a cycle over two frames.
func NewSpriteCycle(frames [2]core.Frame) *SpriteCycle {
	return &SpriteCycle{frames: frames}
}

// Next returns the frame for the current tick and advances the cycle.
func (s *SpriteCycle) Next() core.Frame {
	f := s.frames[(s.step/holdTicks)%len(s.frames)]
	s.step++
	return f
}
