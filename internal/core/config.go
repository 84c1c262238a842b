package core

// RuntimeConfig describes the field a game is started on when the terminal
// size cannot be read.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Debris destroyed
	Epoch    int  // Current year
	GameOver bool // Whether the game has ended
}
