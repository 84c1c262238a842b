package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

func testRunOptions(t *testing.T) registry.RunOptions {
	t.Helper()
	catalog, err := assets.Load(assets.Embedded())
	if err != nil {
		t.Fatalf("assets.Load failed: %v", err)
	}
	return registry.RunOptions{Catalog: catalog, Config: config.DefaultConfig(), Seed: 42}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := testRunOptions(t)

	s1, sum1 := simulate(opts, 80, 24, 300, 0, nil)
	s2, sum2 := simulate(opts, 80, 24, 300, 0, nil)

	if sum1 != sum2 {
		t.Errorf("summaries differ for the same seed: %+v vs %+v", sum1, sum2)
	}
	if s1.String() != s2.String() {
		t.Error("final frames differ for the same seed")
	}
	if sum1.Ticks == 0 || sum1.Ticks > 300 {
		t.Errorf("Ticks = %d, expected 1..300", sum1.Ticks)
	}
}

func TestSimulateReportsGameOver(t *testing.T) {
	opts := testRunOptions(t)
	opts.Config.Epoch.StartYear = 2030

	var reported []spacegarbage.Summary
	opts.OnGameOver = func(s spacegarbage.Summary) {
		reported = append(reported, s)
	}

	_, sum := simulate(opts, 20, 40, 5000, 0, nil)
	if sum.State != spacegarbage.GameOver {
		t.Fatalf("a still ship should be hit within 5000 ticks, state = %s", sum.State)
	}
	if len(reported) != 1 || reported[0] != sum {
		t.Errorf("expected one report equal to the summary, got %+v", reported)
	}
}

func TestSimulateFires(t *testing.T) {
	opts := testRunOptions(t)
	opts.Config.Epoch.StartYear = 2030

	_, sum := simulate(opts, 80, 24, 10, 1, nil)
	if sum.Shots == 0 {
		t.Error("expected shots once the gun is unlocked")
	}
}

func TestSimulateCommitHook(t *testing.T) {
	opts := testRunOptions(t)

	frames := 0
	_, sum := simulate(opts, 80, 24, 25, 0, func(s *core.Screen) {
		frames++
		if s.Commits() != frames {
			t.Fatalf("Commits() = %d during hook call %d", s.Commits(), frames)
		}
	})
	if frames != sum.Ticks {
		t.Errorf("hook saw %d frames, expected %d", frames, sum.Ticks)
	}
}

func TestBackendsCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	runBackends(cmd, nil)

	out := buf.String()
	for _, name := range []string{"tea", "tcell"} {
		if !strings.Contains(out, name) {
			t.Errorf("backends output should list %q:\n%s", name, out)
		}
	}
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printRuns(cmd, nil)
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty table message missing:\n%s", buf.String())
	}

	buf.Reset()
	printRuns(cmd, []storage.Run{{Player: "dave", Difficulty: "hard", EndYear: 2042, Destroyed: 7, Ticks: 765}})
	out := buf.String()
	for _, want := range []string{"dave", "hard", "2042", "765"} {
		if !strings.Contains(out, want) {
			t.Errorf("runs output should contain %q:\n%s", want, out)
		}
	}
}

func TestPrintRunAndStats(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printRun(cmd, &storage.Run{ID: "abc", Player: "erin", Backend: "tcell", Difficulty: "easy", StartYear: 1957, EndYear: 1990})
	if out := buf.String(); !strings.Contains(out, "abc") || !strings.Contains(out, "1957-1990") {
		t.Errorf("unexpected run output:\n%s", out)
	}

	buf.Reset()
	printStats(cmd, &storage.Stats{})
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty stats message missing:\n%s", buf.String())
	}

	buf.Reset()
	printStats(cmd, &storage.Stats{Runs: 3, BestYear: 2031, MostDestroyed: 12})
	if out := buf.String(); !strings.Contains(out, "2031") || !strings.Contains(out, "12") {
		t.Errorf("unexpected stats output:\n%s", out)
	}
}
