package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

// Options tune a terminal run.
type Options struct {
	Player    string      // name stored with run records
	HoldTicks int         // key hold window, see Holds
	Logger    *log.Logger // nil discards
	InMenu    bool        // esc/b returns to a menu instead of doing nothing
}

// Model is the Bubble Tea model for running a cartridge.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	opts   Options
	keys   KeyMap
	holds  *Holds
	help   help.Model
	logger *log.Logger

	state      core.GameState
	paused     bool
	runSaved   bool
	status     string
	statusTTL  int // ticks left before status clears
	quitting   bool
	backToMenu bool
	standalone bool // owns the program, so going back ends it
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	cfg = cfg.WithDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		holds:  NewHolds(opts.HoldTicks),
		help:   h,
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.holds.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.opts.InMenu {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.paused {
		return m, nil
	}
	if b, ok := m.keys.Button(msg); ok {
		m.holds.Press(b)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.holds.Next())
	m.state = result.State

	if m.state.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	} else if !m.state.GameOver {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Storage is best-effort.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Stage:   m.state.Stage,
		Cleared: m.state.Cleared,
		Frames:  m.state.Frames,
		HP:      m.state.HP,
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "player", run.Player, "stage", run.Stage, "cleared", run.Cleared, "frames", run.Frames)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed"
		return
	}
	dir := filepath.Join(home, ".bear", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.status = "saved " + path
	m.statusTTL = 3 * m.config.TickRate
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	switch {
	case m.paused:
		b.WriteString(pausedStyle.Render("PAUSED - p to resume"))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	default:
		b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
