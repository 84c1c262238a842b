package config

import (
	_ "embed"
)

//go:embed defaults/spacegarbage.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/spacegarbage.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultConfig() SpaceGarbageConfig {
	return SpaceGarbageConfig{
		Timing: TimingConfig{
			TickMillis:   100,
			TicksPerYear: 9,
		},
		Stars: StarsConfig{
			Count:       100,
			Symbols:     "+*.:",
			MaxDelay:    20,
			DimTicks:    20,
			NormalTicks: 3,
			BoldTicks:   5,
		},
		Player: PlayerConfig{
			RowSpeedLimit:    2,
			ColumnSpeedLimit: 2,
			Acceleration:     0.75,
			Fading:           0.8,
		},
		Debris: DebrisConfig{
			Speed: 0.5,
		},
		Fire: FireConfig{
			RowSpeed:    -0.3,
			ColumnSpeed: 0,
			UnlockYear:  2020,
		},
		Epoch: EpochConfig{
			StartYear: 1957,
		},
		Difficulty: DifficultyConfig{
			Table: []DelayStep{
				{FromYear: 1961, Delay: 20},
				{FromYear: 1969, Delay: 14},
				{FromYear: 1981, Delay: 10},
				{FromYear: 1995, Delay: 8},
				{FromYear: 2010, Delay: 6},
				{FromYear: 2020, Delay: 2},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
