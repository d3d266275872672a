package host

import (
	"testing"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

func TestCanvasLiveCount(t *testing.T) {
	c := NewCanvas(ViewBox{W: 16, H: 16})

	a := c.AddSprite(SolidPattern(2, 2), NewPalette(core.ColorRed), 0, 0)
	b := c.AddText("HI", NewPalette(core.ColorWhite), 0, 0)
	if c.Live() != 2 {
		t.Fatalf("Live() = %d, expected 2", c.Live())
	}

	a.Remove()
	a.Remove() // second remove is a no-op
	if c.Live() != 1 {
		t.Errorf("Live() after remove = %d, expected 1", c.Live())
	}

	b.Remove()
	if c.Live() != 0 {
		t.Errorf("Live() = %d, expected 0", c.Live())
	}
}

func TestCanvasTexts(t *testing.T) {
	c := NewCanvas(ViewBox{W: 16, H: 16})
	c.AddText("STAGE 1", NewPalette(core.ColorSkyBlue), 2, 2)
	hp := c.AddText("HP:5", NewPalette(core.ColorWhite), 2, 12)
	hidden := c.AddText("GAME OVER", NewPalette(core.ColorRed), 0, 0)
	hidden.SetVisible(false)

	hp.SetText("HP:4")
	got := c.Texts()
	expected := []string{"STAGE 1", "HP:4"}
	if len(got) != len(expected) {
		t.Fatalf("Texts() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Texts()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestCanvasPixels(t *testing.T) {
	c := NewCanvas(ViewBox{W: 8, H: 4})
	c.SetBackground(core.ColorSkyBlue)

	pattern := Pattern{
		{1, 0},
		{2, 1},
	}
	s := c.AddSprite(pattern, NewPalette(core.ColorRed, core.ColorGreen), 2, 1)

	dst := make([]core.Color, 8*4)
	c.Pixels(dst)

	tests := []struct {
		x, y     int
		expected core.Color
	}{
		{0, 0, core.ColorSkyBlue},
		{2, 1, core.ColorRed},
		{3, 1, core.ColorSkyBlue}, // slot 0 is transparent
		{2, 2, core.ColorGreen},
		{3, 2, core.ColorRed},
	}
	for _, tt := range tests {
		if got := dst[tt.y*8+tt.x]; got != tt.expected {
			t.Errorf("pixel (%d, %d) = %d, expected %d", tt.x, tt.y, got, tt.expected)
		}
	}

	s.SetVisible(false)
	c.Pixels(dst)
	if dst[1*8+2] != core.ColorSkyBlue {
		t.Errorf("hidden sprite should not be drawn, got %d", dst[1*8+2])
	}
}

func TestCanvasViewBoxScroll(t *testing.T) {
	c := NewCanvas(ViewBox{X: 100, W: 8, H: 4})
	c.AddSprite(SolidPattern(1, 1), NewPalette(core.ColorYellow), 103, 2)
	c.AddSprite(SolidPattern(1, 1), NewPalette(core.ColorYellow), 3, 2)

	dst := make([]core.Color, 8*4)
	c.Pixels(dst)

	if dst[2*8+3] != core.ColorYellow {
		t.Errorf("sprite at world x=103 should land on pixel x=3")
	}
	count := 0
	for _, p := range dst {
		if p == core.ColorYellow {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 1 yellow pixel, got %d", count)
	}
}

func TestCanvasLaterEntitiesOnTop(t *testing.T) {
	c := NewCanvas(ViewBox{W: 4, H: 4})
	c.AddSprite(SolidPattern(4, 4), NewPalette(core.ColorBlue), 0, 0)
	c.AddSprite(SolidPattern(1, 1), NewPalette(core.ColorWhite), 1, 1)

	dst := make([]core.Color, 16)
	c.Pixels(dst)
	if dst[1*4+1] != core.ColorWhite {
		t.Errorf("later sprite should cover earlier one, got %d", dst[1*4+1])
	}
}

func TestCanvasRasterizeCells(t *testing.T) {
	c := NewCanvas(ViewBox{W: 4, H: 4})
	c.SetBackground(core.ColorBlack)
	// Top half red, bottom half green
	c.AddSprite(SolidPattern(4, 2), NewPalette(core.ColorRed), 0, 0)
	c.AddSprite(SolidPattern(4, 2), NewPalette(core.ColorGreen), 0, 2)

	screen := core.NewScreen(4, 1)
	c.RasterizeCells(screen)

	cell := screen.GetCell(0, 0)
	if cell.Rune != '▀' {
		t.Errorf("cell rune = %q, expected half block", cell.Rune)
	}
	if cell.Fg != core.ColorRed || cell.Bg != core.ColorGreen {
		t.Errorf("cell colours = (%d, %d), expected (%d, %d)", cell.Fg, cell.Bg, core.ColorRed, core.ColorGreen)
	}
}

func TestCanvasRasterizeLabels(t *testing.T) {
	c := NewCanvas(ViewBox{W: 160, H: 120})
	c.AddText("HP:5", NewPalette(core.ColorWhite), 0, 0)

	screen := core.NewScreen(80, 30)
	c.RasterizeCells(screen)

	if got := screen.Row(0)[:4]; got != "HP:5" {
		t.Errorf("label row = %q, expected %q", got, "HP:5")
	}
	if fg := screen.GetCell(0, 0).Fg; fg != core.ColorWhite {
		t.Errorf("label fg = %d, expected white", fg)
	}
}

func TestCanvasRasterizeEmptyScreen(t *testing.T) {
	c := NewCanvas(ViewBox{W: 160, H: 120})
	c.AddText("X", NewPalette(core.ColorWhite), 0, 0)
	c.RasterizeCells(core.NewScreen(0, 0)) // must not panic
}
