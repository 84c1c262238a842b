package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/storage"
)

// maxRuns is how many runs the board loads.
const maxRuns = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

var runColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Year", Width: 6},
	{Title: "Destroyed", Width: 10},
	{Title: "Ticks", Width: 7},
	{Title: "Player", Width: 12},
	{Title: "Mode", Width: 8},
	{Title: "Date", Width: 13},
}

// RunsKeyMap defines the key bindings for the runs board.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Details key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRunsKeyMap returns the default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Details: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "details")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// RunsModel browses the best finished runs. The selected run's seed and
// year span can be shown under the table.
type RunsModel struct {
	runs        []storage.Run
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	showDetails bool
	quitting    bool
}

// NewRunsModel creates a board over the given runs, best first.
func NewRunsModel(runs []storage.Run, width, height int) RunsModel {
	m := RunsModel{
		runs:   runs,
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newRunsTable(runs, height)
	return m
}

// newRunsTable builds a table of runs that fits a terminal of the given
// height, leaving room for the title, details and help.
func newRunsTable(runs []storage.Run, height int) table.Model {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.EndYear),
			strconv.Itoa(r.Destroyed),
			strconv.Itoa(r.Ticks),
			r.Player,
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(runColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init implements tea.Model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Details):
			m.showDetails = !m.showDetails
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width, m.height = msg.Width, msg.Height
		m.table = newRunsTable(m.runs, m.height)
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("BEST RUNS", m.width)))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(boardFrameStyle.Render(
			boardEmptyStyle.Render("No runs recorded yet.\nFly once to get on the board!")))
	} else {
		b.WriteString(boardFrameStyle.Render(m.table.View()))
		if m.showDetails {
			b.WriteString("\n")
			b.WriteString(boardDimStyle.Render(m.details()))
		}
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the run under the cursor, or nil for an empty board.
func (m RunsModel) Selected() *storage.Run {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return nil
	}
	return &m.runs[i]
}

// details describes the selected run on one line.
func (m RunsModel) details() string {
	r := m.Selected()
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%s  seed %d  %d-%d  %d shots  via %s",
		r.ID, r.Seed, r.StartYear, r.EndYear, r.Shots, r.Backend)
}

// RunRunsBoard loads the best runs and shows them until the user quits.
func RunRunsBoard(store *storage.Store, width, height int) error {
	runs, err := store.TopRuns(maxRuns)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(NewRunsModel(runs, width, height), tea.WithAltScreen()).Run()
	return err
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}
