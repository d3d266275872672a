package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

// cellStyles holds one style per fg/bg pair, built on first use. SSH
// sessions render concurrently.
var (
	cellStyles   = map[[2]core.Color]lipgloss.Style{}
	cellStylesMu sync.Mutex
)

func cellStyle(fg, bg core.Color) lipgloss.Style {
	cellStylesMu.Lock()
	defer cellStylesMu.Unlock()

	k := [2]core.Color{fg, bg}
	if s, ok := cellStyles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if hex := fg.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	if hex := bg.Hex(); hex != "" {
		s = s.Background(lipgloss.Color(hex))
	}
	cellStyles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
