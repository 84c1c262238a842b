package main

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// loadRunOptions loads the config and assets named by the global flags and
// applies the difficulty preset.
func loadRunOptions(difficulty string) (registry.RunOptions, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return registry.RunOptions{}, "", err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return registry.RunOptions{}, "", fmt.Errorf("cannot load config: %w", err)
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return registry.RunOptions{}, "", err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)

	catalog, err := assets.Load(assets.Open(flagAssets))
	if err != nil {
		return registry.RunOptions{}, "", fmt.Errorf("cannot load assets: %w", err)
	}
	logger.Debug("assets loaded", "dir", flagAssets, "garbage", catalog.GarbageNames())

	return registry.RunOptions{
		Catalog: catalog,
		Config:  cfg,
		Seed:    flagSeed,
		Logger:  logger,
	}, preset, nil
}
