package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default invalid: %v", err)
	}

	builtin := DefaultConfig()
	if cfg.Timing != builtin.Timing || cfg.Stars != builtin.Stars || cfg.Player != builtin.Player {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\n%+v\n%+v", cfg, builtin)
	}
	if len(cfg.Difficulty.Table) != len(builtin.Difficulty.Table) {
		t.Fatalf("difficulty table length %d, expected %d", len(cfg.Difficulty.Table), len(builtin.Difficulty.Table))
	}
	for i := range builtin.Difficulty.Table {
		if cfg.Difficulty.Table[i] != builtin.Difficulty.Table[i] {
			t.Errorf("table[%d] = %+v, expected %+v", i, cfg.Difficulty.Table[i], builtin.Difficulty.Table[i])
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("stars:\n  count: 450\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Stars.Count != 450 {
		t.Errorf("Stars.Count = %d, expected 450", cfg.Stars.Count)
	}
	if cfg.Timing.TicksPerYear != 9 {
		t.Errorf("untouched keys should keep defaults, TicksPerYear = %d", cfg.Timing.TicksPerYear)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "timing:\n  tick_ms: 50\n  ticks_per_year: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected custom", src)
	}
	if cfg.Timing.TickMillis != 50 || cfg.Timing.TicksPerYear != 3 {
		t.Errorf("Timing = %+v, expected overrides applied", cfg.Timing)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  fading: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "fading") {
		t.Errorf("invalid fading should be reported, got %v", err)
	}
}

func TestValidateRejectsBadTable(t *testing.T) {
	tests := []struct {
		name  string
		table []DelayStep
	}{
		{"empty", nil},
		{"zero delay", []DelayStep{{FromYear: 1961, Delay: 0}}},
		{"years not increasing", []DelayStep{{1961, 20}, {1961, 10}}},
		{"delay grows", []DelayStep{{1961, 10}, {1970, 20}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := (DifficultyConfig{Table: tc.table}).Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSpawnDelay(t *testing.T) {
	dm := NewDifficultyManager(DefaultConfig().Difficulty)

	tests := []struct {
		year  int
		delay int
		ok    bool
	}{
		{1957, 0, false},
		{1960, 0, false},
		{1961, 20, true},
		{1968, 20, true},
		{1969, 14, true},
		{1970, 14, true},
		{1981, 10, true},
		{1995, 8, true},
		{2010, 6, true},
		{2019, 6, true},
		{2020, 2, true},
		{2025, 2, true},
	}

	for _, tc := range tests {
		delay, ok := dm.SpawnDelay(tc.year)
		if delay != tc.delay || ok != tc.ok {
			t.Errorf("SpawnDelay(%d) = (%d, %v), expected (%d, %v)", tc.year, delay, ok, tc.delay, tc.ok)
		}
	}
}

func TestSpawnDelayNonIncreasing(t *testing.T) {
	dm := NewDifficultyManager(DefaultConfig().Difficulty)

	prev := -1
	for year := 1900; year < 2100; year++ {
		delay, ok := dm.SpawnDelay(year)
		if year < dm.ActivationYear() {
			if ok {
				t.Fatalf("spawning should be disabled in %d", year)
			}
			continue
		}
		if !ok {
			t.Fatalf("spawning should be enabled in %d", year)
		}
		if prev != -1 && delay > prev {
			t.Fatalf("delay increased from %d to %d in %d", prev, delay, year)
		}
		prev = delay
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.Table[0].FromYear != 1951 {
		t.Errorf("hard should start spawning 10 years earlier, got %d", cfg.Difficulty.Table[0].FromYear)
	}
	if DefaultConfig().Difficulty.Table[0].FromYear != 1961 {
		t.Error("ApplyPreset must not alias the default table")
	}

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Difficulty.Table[0].FromYear != 1971 {
		t.Errorf("easy should start spawning 10 years later, got %d", easy.Difficulty.Table[0].FromYear)
	}
}

func TestParsePreset(t *testing.T) {
	for _, in := range []string{"", "normal", "easy", "hard"} {
		if _, err := ParsePreset(in); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", in, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
