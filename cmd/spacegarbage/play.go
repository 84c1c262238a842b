package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/audio"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	flagBackend    string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Fire (from 2020 on)
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Every spawn-rate step comes 10 years later
  normal - The configured table
  hard   - Every spawn-rate step comes 10 years earlier

Examples:
  spacegarbage play
  spacegarbage play --backend tcell
  spacegarbage play --difficulty hard --sound
  spacegarbage play --config ./my-spacegarbage.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Display backend (see 'spacegarbage backends')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q\nRun 'spacegarbage backends' to see available backends", flagBackend)
	}
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	opts, preset, err := loadRunOptions(flagDifficulty)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	opts.Width, opts.Height = rc.ScreenW, rc.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width, opts.Height = w, h
	}

	if flagSound {
		player := audio.New()
		if err := player.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sounder = player
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
		name := playerName()
		opts.OnGameOver = func(sum spacegarbage.Summary) {
			id, err := store.SaveRun(storage.Run{
				Player:     name,
				Backend:    backend.Name(),
				Difficulty: string(preset),
				Seed:       sum.Seed,
				StartYear:  sum.StartYear,
				EndYear:    sum.Year,
				Ticks:      sum.Ticks,
				Destroyed:  sum.Destroyed,
				Shots:      sum.Shots,
			})
			if err != nil {
				logger.Error("could not save run", "error", err)
				return
			}
			logger.Info("run saved", "id", id, "year", sum.Year)
		}
	}

	logger.Info("starting", "backend", backend.Name(), "width", opts.Width, "height", opts.Height)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := backend.Run(ctx, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("stopped", "backend", backend.Name())
	return nil
}

// playerName labels local runs.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
