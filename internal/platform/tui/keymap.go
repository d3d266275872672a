package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

// KeyMap defines the key bindings while a cartridge runs.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Secondary  key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Secondary, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Confirm, k.Secondary},
		{k.Pause, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("z", "Z", " "),
			key.WithHelp("z/space", "jump"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("x", "X", "enter"),
			key.WithHelp("x", "title/next"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button maps a key message to a pad button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.Confirm):
		return core.ButtonConfirm, true
	case key.Matches(msg, k.Secondary):
		return core.ButtonSecondary, true
	}
	return 0, false
}

// DefaultHoldTicks is how long a key counts as held after its last press
// or repeat.
const DefaultHoldTicks = 12

// Holds turns terminal key presses into held buttons. Terminals report
// presses and auto-repeats but no releases, so a direction stays held for a
// window of ticks after its last press and is released when the window
// runs out or the opposite direction is pressed. Confirm and Secondary are
// taps: each press is held for exactly one tick, with a released tick in
// between, so every press is its own edge.
type Holds struct {
	window int
	tick   int
	until  map[core.Button]int
	taps   core.ButtonSet // tap buttons waiting for their tick
	prev   core.ButtonSet
}

// NewHolds creates a tracker with the given hold window in ticks.
func NewHolds(window int) *Holds {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &Holds{window: window, until: make(map[core.Button]int)}
}

// isTap reports whether b is pulsed for one tick instead of held.
func isTap(b core.Button) bool {
	return b == core.ButtonConfirm || b == core.ButtonSecondary
}

// Press marks b as held for the next window ticks, or queues a one-tick
// pulse for tap buttons.
func (h *Holds) Press(b core.Button) {
	switch b {
	case core.ButtonLeft:
		delete(h.until, core.ButtonRight)
	case core.ButtonRight:
		delete(h.until, core.ButtonLeft)
	case core.ButtonUp:
		delete(h.until, core.ButtonDown)
	case core.ButtonDown:
		delete(h.until, core.ButtonUp)
	}
	if isTap(b) {
		h.taps = h.taps.With(b)
		return
	}
	h.until[b] = h.tick + h.window
}

// Reset releases every button and drops queued taps.
func (h *Holds) Reset() {
	clear(h.until)
	h.taps = 0
	h.prev = 0
}

// Next advances one tick and returns its input frame.
func (h *Holds) Next() core.InputFrame {
	var held core.ButtonSet
	for b, until := range h.until {
		if until > h.tick {
			held = held.With(b)
		} else {
			delete(h.until, b)
		}
	}
	for _, b := range []core.Button{core.ButtonConfirm, core.ButtonSecondary} {
		// A tap right after the same tap waits one tick so it gets an edge.
		if h.taps.Has(b) && !h.prev.Has(b) {
			held = held.With(b)
			h.taps = h.taps.Without(b)
		}
	}
	frame := core.NextInputFrame(h.prev, held)
	h.prev = held
	h.tick++
	return frame
}
