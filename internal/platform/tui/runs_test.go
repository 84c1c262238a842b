package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-garbage/internal/storage"
)

func TestRunsModelRows(t *testing.T) {
	runs := []storage.Run{
		{Player: "alice", Difficulty: "hard", EndYear: 2031, Destroyed: 14, Ticks: 900},
		{Player: "bob", Difficulty: "easy", EndYear: 1977, Ticks: 180},
	}
	m := NewRunsModel(runs, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "2031" || rows[0][4] != "alice" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestRunsModelQuit(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText() should not truncate, got %q", got)
	}
}

func TestRunsModelDetails(t *testing.T) {
	runs := []storage.Run{
		{ID: "run-1", Seed: 11, StartYear: 1957, EndYear: 2003, Shots: 0, Backend: "tea"},
		{ID: "run-2", Seed: 22, StartYear: 1967, EndYear: 2001, Shots: 4, Backend: "ssh"},
	}
	m := NewRunsModel(runs, 100, 30)

	if strings.Contains(m.View(), "seed 11") {
		t.Error("details should be hidden until toggled")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RunsModel)
	if !strings.Contains(m.View(), "seed 11") {
		t.Errorf("details for the first run missing:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(RunsModel)
	if sel := m.Selected(); sel == nil || sel.ID != "run-2" {
		t.Fatalf("Selected() = %+v, expected run-2", sel)
	}
	if !strings.Contains(m.View(), "via ssh") {
		t.Error("details should follow the cursor")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(RunsModel)
	if sel := m.Selected(); sel == nil || sel.ID != "run-2" {
		t.Error("resize should keep the cursor")
	}
}

func TestRunsModelSelectedEmpty(t *testing.T) {
	if NewRunsModel(nil, 80, 24).Selected() != nil {
		t.Error("empty board has no selection")
	}
}
