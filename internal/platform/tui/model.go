package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// Smallest field the game is started on.
const (
	minWidth  = 20
	minHeight = 10
)

// Model is the Bubble Tea model for one player's game.
type Model struct {
	opts     registry.RunOptions
	game     *spacegarbage.Game
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	status   lipgloss.Style
	tick     time.Duration
	reported bool // Whether the current run has been reported as over
	quitting bool
}

// NewModel creates a model whose field fills a width x height terminal,
// minus one line for the status bar.
func NewModel(opts registry.RunOptions, width, height int, renderer *lipgloss.Renderer) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	painter := NewPainter(renderer)
	m := Model{
		opts:    opts,
		painter: painter,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		status:  painter.renderer.NewStyle().Foreground(lipgloss.Color("241")),
		tick:    opts.Config.Timing.Tick(),
	}
	m.newField(width, height, opts.Seed)
	return m
}

// newField allocates a screen for the terminal size and starts a new run on it.
func (m *Model) newField(width, height int, seed int64) {
	m.screen = core.NewScreen(max(width, minWidth), max(height-1, minHeight))
	m.game = spacegarbage.New(m.screen, m.opts.Catalog, m.opts.Config, seed, m.opts.GameOptions()...)
	m.help.Width = width
	m.reported = false
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Push(action)
	return m, nil
}

// handleResize starts over on a field of the new size. The game assumes
// its surface never changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows, cols := m.screen.Size()
	if max(msg.Width, minWidth) == cols && max(msg.Height-1, minHeight) == rows {
		return m, nil
	}

	if m.opts.Logger != nil {
		m.opts.Logger.Debug("terminal resized, restarting", "width", msg.Width, "height", msg.Height)
	}
	m.newField(msg.Width, msg.Height, time.Now().UnixNano())
	return m, nil
}

// handleTick drains the input queued since the previous tick and steps
// the game once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	c := m.input.Drain()

	if c.Restart && m.game.State() == spacegarbage.GameOver {
		m.game.Reset(time.Now().UnixNano())
		m.reported = false
		return m, tickCmd(m.tick)
	}

	if m.game.Step(c) == spacegarbage.GameOver && !m.reported {
		m.reported = true
		s := m.game.Summary()
		if m.opts.Logger != nil {
			m.opts.Logger.Info("game over", "year", s.Year, "destroyed", s.Destroyed, "ticks", s.Ticks)
		}
		m.opts.GameOver(s)
	}

	return m, tickCmd(m.tick)
}

// View renders the field and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Paint(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	st := m.game.Snapshot()
	left := fmt.Sprintf(" %d  destroyed: %d ", st.Epoch, st.Score)
	if st.GameOver {
		left += "[game over] "
	} else if m.game.FireUnlocked() {
		left += "[plasma gun ready] "
	}
	return m.status.Render(left) + m.help.View(m.keys)
}

// Summary describes the current run.
func (m Model) Summary() spacegarbage.Summary {
	return m.game.Summary()
}

// Backend runs the game with Bubble Tea on the local terminal.
type Backend struct{}

// Name implements registry.Backend.
func (Backend) Name() string {
	return "tea"
}

// Title implements registry.Backend.
func (Backend) Title() string {
	return "Bubble Tea renderer with lipgloss styling"
}

// Run implements registry.Backend.
func (Backend) Run(ctx context.Context, opts registry.RunOptions) error {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
	}

	model := NewModel(opts, width, height, nil)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}

func init() {
	registry.Register("tea", func() registry.Backend { return Backend{} })
}
