package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "spacegarbage.yaml"

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.spacegarbage/configs/spacegarbage.yaml ->
// ./configs/spacegarbage.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed.
func Load(customPath string) (SpaceGarbageConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", fileName)); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document on top of the built-in defaults, so a file
// only needs the keys it changes.
func Parse(data []byte) (SpaceGarbageConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (SpaceGarbageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpaceGarbageConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacegarbage", "configs", filename)
}

// ApplyPreset shifts the difficulty table along the calendar.
// Easy moves every row later, hard moves every row earlier.
func ApplyPreset(cfg *SpaceGarbageConfig, preset DifficultyPreset) {
	shift := yearShiftForPreset(preset)
	if shift == 0 {
		return
	}
	table := make([]DelayStep, len(cfg.Difficulty.Table))
	for i, step := range cfg.Difficulty.Table {
		table[i] = DelayStep{FromYear: step.FromYear + shift, Delay: step.Delay}
	}
	cfg.Difficulty.Table = table
}
