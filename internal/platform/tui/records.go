package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

// maxRecords is how many runs the records screen loads.
const maxRecords = 100

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the best-runs table.
type RecordsModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	runs       []storage.Run
	err        error
	table      table.Model
	help       help.Model
	keys       RecordsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool // quit the program on back instead of handing control to a parent
}

// NewRecordsModel creates a records screen for every registered game.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	m := RecordsModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadRuns(m.games[0].ID)
	}
	return m
}

// createTable creates a new table sized to the screen.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Stage", Width: 6},
		{Title: "Result", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}

	// Player takes whatever width is left, within limits
	fixed := 0
	for i, c := range columns {
		if i != 1 {
			fixed += c.Width + 2
		}
	}
	if free := m.width - 6 - fixed; free > 12 {
		columns[1].Width = min(free, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// loadRuns loads the best runs for the given game ID.
func (m *RecordsModel) loadRuns(gameID string) {
	m.runs, m.err = nil, nil
	if m.store != nil {
		m.runs, m.err = m.store.TopRuns(gameID, maxRecords)
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, best first.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "game over"
		if r.Cleared {
			result = "clear"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Stage),
			result,
			FormatFrames(r.Frames),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// FormatFrames renders a frame count at 60 ticks per second as m:ss.cc.
func FormatFrames(frames int) string {
	centis := frames * 100 / 60
	return fmt.Sprintf("%d:%02d.%02d", centis/6000, centis/100%60, centis%100)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadRuns(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadRuns(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "BEST RUNS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("BEST RUNS - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run records are unavailable.")
	case m.err != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to set a record!")
	}
	return m.table.View()
}

// Runs returns the runs currently shown.
func (m RecordsModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records screen on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRecordsModel(store, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
