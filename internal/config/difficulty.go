package config

import (
	"errors"
	"fmt"
	"sort"
)

// DelayStep is one row of the difficulty table: from FromYear on, debris is
// spawned every Delay ticks until the next row takes over.
type DelayStep struct {
	FromYear int `yaml:"from_year"`
	Delay    int `yaml:"delay"`
}

// DifficultyConfig defines the year to spawn-delay curve.
type DifficultyConfig struct {
	Table []DelayStep `yaml:"table"`
}

// Validate requires strictly increasing years and non-increasing positive delays.
func (d DifficultyConfig) Validate() error {
	if len(d.Table) == 0 {
		return errors.New("difficulty.table must have at least one row")
	}
	for i, step := range d.Table {
		if step.Delay <= 0 {
			return fmt.Errorf("difficulty.table[%d]: delay must be positive, got %d", i, step.Delay)
		}
		if i == 0 {
			continue
		}
		prev := d.Table[i-1]
		if step.FromYear <= prev.FromYear {
			return fmt.Errorf("difficulty.table[%d]: from_year %d must be after %d", i, step.FromYear, prev.FromYear)
		}
		if step.Delay > prev.Delay {
			return fmt.Errorf("difficulty.table[%d]: delay %d must not exceed previous %d", i, step.Delay, prev.Delay)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// yearShiftForPreset returns how far the table moves along the calendar.
func yearShiftForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return -10
	default:
		return 0
	}
}

// DifficultyManager maps the current year to a spawn delay.
type DifficultyManager struct {
	table []DelayStep
}

// NewDifficultyManager creates a manager over a copy of the table, sorted by year.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	table := make([]DelayStep, len(cfg.Table))
	copy(table, cfg.Table)
	sort.Slice(table, func(i, j int) bool {
		return table[i].FromYear < table[j].FromYear
	})
	return &DifficultyManager{table: table}
}

// SpawnDelay returns the ticks between debris spawns for the given year.
// ok is false while spawning is disabled (before the first table row).
func (d *DifficultyManager) SpawnDelay(year int) (delay int, ok bool) {
	// Index of the first row starting after year.
	i := sort.Search(len(d.table), func(i int) bool {
		return d.table[i].FromYear > year
	})
	if i == 0 {
		return 0, false
	}
	return d.table[i-1].Delay, true
}

// ActivationYear returns the first year with spawning enabled.
func (d *DifficultyManager) ActivationYear() int {
	if len(d.table) == 0 {
		return 0
	}
	return d.table[0].FromYear
}
