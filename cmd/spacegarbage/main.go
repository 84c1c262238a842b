// spacegarbage is a terminal space game: fly a ship through falling
// orbital debris while the calendar runs from 1957 onward.
//
// Usage:
//
//	spacegarbage play        - Play in this terminal
//	spacegarbage serve       - Start SSH server for remote play
//	spacegarbage simulate    - Run a headless game and print the last frame
//	spacegarbage runs        - Show the best finished runs
//	spacegarbage backends    - List available display backends
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.spacegarbage/runs.db)
//	--log <path>       - Write logs to a file (default: discard)
//	--log-level <lvl>  - debug, info, warn, error
//	--config <path>    - Custom game config YAML
//	--assets <dir>     - Replace the embedded frames with a directory
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/space-garbage/internal/platform/console"
	_ "github.com/vovakirdan/space-garbage/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
	flagConfig   string
	flagAssets   string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegarbage",
	Short: "Space Garbage - dodge orbital debris in your terminal",
	Long: `Space Garbage is a terminal game about a ship lost in a growing cloud
of orbital debris. Every few seconds a year passes; the later it gets,
the faster the debris falls. From 2020 on the ship carries a plasma gun.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run a headless game and print the last frame
  runs      - View the best finished runs
  backends  - List display backends

Examples:
  spacegarbage play
  spacegarbage play --backend tcell --difficulty hard
  spacegarbage serve --ssh :2222
  spacegarbage simulate --ticks 2000 --seed 42
  spacegarbage runs`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacegarbage/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with replacement frames and phrases")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(backendsCmd)
}

// setupLogger points the shared logger at --log. The interactive
// backends own stdout, so nothing is logged to the terminal by default.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacegarbage",
		Level:           level,
	})
	return nil
}
