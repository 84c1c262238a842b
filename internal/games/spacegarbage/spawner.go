package spacegarbage

// spawner drops a new piece of debris every N ticks, where N comes from the
// difficulty table for the current year. Before the table's first year it
// idles and polls once per tick.
type spawner struct {
	g    *Game
	wait int
}

func (s *spawner) Step() bool {
	if s.wait > 0 {
		s.wait--
		return true
	}

	delay, ok := s.g.difficulty.SpawnDelay(s.g.epoch.Year())
	if !ok {
		return true
	}

	s.g.spawnDebris()
	// The spawning step counts toward the delay.
	s.wait = delay - 1
	return true
}
