package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var (
	flagRunsLimit       int
	flagRunsInteractive bool
	flagRunsID          string
	flagRunsStats       bool
	flagRunsClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best finished runs",
	Long: `Display the runs that reached the latest year. Ties go to the run
that destroyed more debris, then to the longer run.

Examples:
  spacegarbage runs
  spacegarbage runs --limit 25
  spacegarbage runs -i
  spacegarbage runs --stats
  spacegarbage runs --id 6f1c...
  spacegarbage runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	runsCmd.Flags().StringVar(&flagRunsID, "id", "", "Show a single run")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show totals over all runs")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All runs deleted.")
		return nil
	case flagRunsID != "":
		r, err := store.RunByID(flagRunsID)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("no run with id %q", flagRunsID)
		}
		printRun(cmd, r)
		return nil
	case flagRunsStats:
		stats, err := store.GetStats()
		if err != nil {
			return err
		}
		printStats(cmd, stats)
		return nil
	}

	if flagRunsInteractive {
		rc := core.DefaultConfig()
		width, height := rc.ScreenW, rc.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunsBoard(store, width, height)
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	printRuns(cmd, runs)

	if len(runs) > 0 {
		if best, err := store.BestYear(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\nBest: %d\n", best)
		}
	}
	return nil
}

func printRuns(cmd *cobra.Command, runs []storage.Run) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Best Runs - Space Garbage")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'spacegarbage play' to set the first record!")
		return
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-4s  %-9s  %-7s  %-12s  %-6s  %s\n", "Rank", "Year", "Destroyed", "Ticks", "Player", "Mode", "Date")
	fmt.Fprintf(out, "  %-4s  %-4s  %-9s  %-7s  %-12s  %-6s  %s\n", "----", "----", "---------", "-----", "------", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-4d  %-9d  %-7d  %-12s  %-6s  %s\n",
			i+1, r.EndYear, r.Destroyed, r.Ticks, r.Player, r.Difficulty, dateStr)
	}
}

func printRun(cmd *cobra.Command, r *storage.Run) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:        %s\n", r.ID)
	fmt.Fprintf(out, "Player:     %s (%s, %s)\n", r.Player, r.Backend, r.Difficulty)
	fmt.Fprintf(out, "Seed:       %d\n", r.Seed)
	fmt.Fprintf(out, "Years:      %d-%d\n", r.StartYear, r.EndYear)
	fmt.Fprintf(out, "Ticks:      %d\n", r.Ticks)
	fmt.Fprintf(out, "Destroyed:  %d (%d shots)\n", r.Destroyed, r.Shots)
	fmt.Fprintf(out, "Date:       %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}

func printStats(cmd *cobra.Command, st *storage.Stats) {
	out := cmd.OutOrStdout()
	if st.Runs == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}
	fmt.Fprintf(out, "Runs:            %d\n", st.Runs)
	fmt.Fprintf(out, "Best year:       %d\n", st.BestYear)
	fmt.Fprintf(out, "Most destroyed:  %d\n", st.MostDestroyed)
	fmt.Fprintf(out, "Total ticks:     %d\n", st.TotalTicks)
	fmt.Fprintf(out, "Last played:     %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
}
