// Package tui runs cartridges in the terminal with Bubble Tea, locally or
// over SSH. It owns the tick loop, key hold tracking, run records and the
// menu and records screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// frameInterval is the wall time of one frame at rate frames per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
