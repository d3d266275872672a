package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/registry"
)

// MenuItemKind says what selecting a menu entry does.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuRecords
	MenuQuit
)

// MenuItem is one entry of the start menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string // set for MenuPlay
	Title  string
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ", "z")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	quitting bool
	selected *MenuItem
	embedded bool // hand control back to a parent model instead of quitting the program
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#985830"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates a start menu listing every registered cartridge.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuPlay, GameID: g.ID, Title: "Play " + g.Title})
	}
	items = append(items,
		MenuItem{Kind: MenuRecords, Title: "Best runs"},
		MenuItem{Kind: MenuQuit, Title: "Quit"},
	)

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		if selected.Kind == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B E A R   A D V E N T U R E"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   *MenuItem
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{Item: m.Selected(), Config: m.Config()}, nil
}
