package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

var (
	flagTicks         int
	flagFireEvery     int
	flagSimWidth      int
	flagSimHeight     int
	flagSimDifficulty string
	flagPrintEvery    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and print the last frame",
	Long: `Play a game without a terminal: the ship stays still and optionally
fires at a fixed rate. Stops after --ticks steps or at game over, then
prints the final frame and a run summary.

Examples:
  spacegarbage simulate --seed 42
  spacegarbage simulate --ticks 5000 --fire-every 3 --difficulty hard
  spacegarbage simulate --width 120 --height 40`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rc := core.DefaultConfig()
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 0, "Request a shot every N ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", rc.ScreenW, "Field width")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", rc.ScreenH, "Field height")
	simulateCmd.Flags().IntVar(&flagPrintEvery, "print-every", 0, "Also print every Nth frame (0 = only the last)")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	opts, _, err := loadRunOptions(flagSimDifficulty)
	if err != nil {
		return err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	var onCommit func(*core.Screen)
	if flagPrintEvery > 0 {
		onCommit = func(s *core.Screen) {
			if s.Commits()%flagPrintEvery == 0 {
				fmt.Fprintf(out, "-- tick %d --\n%s\n", s.Commits(), s.String())
			}
		}
	}

	screen, sum := simulate(opts, flagSimWidth, flagSimHeight, flagTicks, flagFireEvery, onCommit)
	logger.Info("simulation finished", "ticks", sum.Ticks, "year", sum.Year, "state", sum.State)

	fmt.Fprintln(out, screen.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Seed:      %d\n", sum.Seed)
	fmt.Fprintf(out, "Ticks:     %d\n", sum.Ticks)
	fmt.Fprintf(out, "Years:     %d-%d\n", sum.StartYear, sum.Year)
	fmt.Fprintf(out, "Debris:    %d spawned, %d destroyed\n", sum.Spawned, sum.Destroyed)
	fmt.Fprintf(out, "Shots:     %d\n", sum.Shots)
	fmt.Fprintf(out, "State:     %s\n", sum.State)
	return nil
}

// simulate steps a game on an in-memory screen until ticks run out or the
// ship is hit. onCommit, if set, sees every committed frame.
func simulate(opts registry.RunOptions, width, height, ticks, fireEvery int, onCommit func(*core.Screen)) (*core.Screen, spacegarbage.Summary) {
	screen := core.NewScreen(width, height)
	if onCommit != nil {
		screen.OnCommit(onCommit)
	}
	game := spacegarbage.New(screen, opts.Catalog, opts.Config, opts.Seed, opts.GameOptions()...)

	for i := 0; i < ticks; i++ {
		c := core.Controls{Fire: fireEvery > 0 && i%fireEvery == 0}
		if game.Step(c) == spacegarbage.GameOver {
			break
		}
	}

	sum := game.Summary()
	if sum.State == spacegarbage.GameOver {
		opts.GameOver(sum)
	}
	return screen, sum
}
