// Package config provides YAML-based game configuration loading and
// difficulty management for space-garbage.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SpaceGarbageConfig contains all tunables of the game.
type SpaceGarbageConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Stars      StarsConfig      `yaml:"stars"`
	Player     PlayerConfig     `yaml:"player"`
	Debris     DebrisConfig     `yaml:"debris"`
	Fire       FireConfig       `yaml:"fire"`
	Epoch      EpochConfig      `yaml:"epoch"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the clock.
type TimingConfig struct {
	TickMillis   int `yaml:"tick_ms"`        // Wall-clock delay per tick
	TicksPerYear int `yaml:"ticks_per_year"` // Ticks between epoch increments
}

// Tick returns the tick interval as a duration.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMillis) * time.Millisecond
}

// StarsConfig defines the blinking starfield.
type StarsConfig struct {
	Count       int    `yaml:"count"`
	Symbols     string `yaml:"symbols"`
	MaxDelay    int    `yaml:"max_delay"` // Upper bound of the random startup delay
	DimTicks    int    `yaml:"dim_ticks"`
	NormalTicks int    `yaml:"normal_ticks"`
	BoldTicks   int    `yaml:"bold_ticks"`
}

// PlayerConfig defines ship handling.
type PlayerConfig struct {
	RowSpeedLimit    float64 `yaml:"row_speed_limit"`
	ColumnSpeedLimit float64 `yaml:"column_speed_limit"`
	Acceleration     float64 `yaml:"acceleration"`
	Fading           float64 `yaml:"fading"` // Velocity multiplier applied every tick
}

// DebrisConfig defines falling garbage.
type DebrisConfig struct {
	Speed float64 `yaml:"speed"` // Rows per tick
}

// FireConfig defines projectiles.
type FireConfig struct {
	RowSpeed    float64 `yaml:"row_speed"`
	ColumnSpeed float64 `yaml:"column_speed"`
	UnlockYear  int     `yaml:"unlock_year"`
}

// EpochConfig defines the in-game calendar.
type EpochConfig struct {
	StartYear int `yaml:"start_year"`
}

// Validate checks the config for values the game cannot run with.
func (c SpaceGarbageConfig) Validate() error {
	var errs []error
	if c.Timing.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if c.Timing.TicksPerYear <= 0 {
		errs = append(errs, fmt.Errorf("timing.ticks_per_year must be positive, got %d", c.Timing.TicksPerYear))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Stars.Symbols == "" {
		errs = append(errs, errors.New("stars.symbols must not be empty"))
	}
	if c.Stars.MaxDelay < 1 {
		errs = append(errs, fmt.Errorf("stars.max_delay must be at least 1, got %d", c.Stars.MaxDelay))
	}
	if c.Player.Fading < 0 || c.Player.Fading > 1 {
		errs = append(errs, fmt.Errorf("player.fading must be within [0, 1], got %g", c.Player.Fading))
	}
	if c.Debris.Speed <= 0 {
		errs = append(errs, fmt.Errorf("debris.speed must be positive, got %g", c.Debris.Speed))
	}
	if c.Fire.RowSpeed == 0 && c.Fire.ColumnSpeed == 0 {
		errs = append(errs, errors.New("fire speed must not be zero on both axes"))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
