package host

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

// Pattern is a small bitmap of palette slots. Slot 0 is transparent.
// Rows may have different lengths; Width reports the longest.
type Pattern [][]uint8

// SolidPattern returns a w×h pattern filled with slot 1.
func SolidPattern(w, h int) Pattern {
	p := make(Pattern, h)
	for y := range p {
		row := make([]uint8, w)
		for x := range row {
			row[x] = 1
		}
		p[y] = row
	}
	return p
}

// Width returns the pattern width in pixels.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p {
		w = max(w, len(row))
	}
	return w
}

// Height returns the pattern height in pixels.
func (p Pattern) Height() int {
	return len(p)
}

// UnmarshalYAML reads a pattern written as a list of digit strings, one per row:
//
//   - "01100110"
//   - "12111121"
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var rows []string
	if err := value.Decode(&rows); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	out := make(Pattern, len(rows))
	for y, row := range rows {
		out[y] = make([]uint8, len(row))
		for x, ch := range row {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("pattern: line %d: row %d: invalid slot %q", value.Line, y, ch)
			}
			out[y][x] = uint8(ch - '0')
		}
	}
	*p = out
	return nil
}

// Palette maps pattern slots to colours. Entry 0 is always transparent.
type Palette []core.Color

// NewPalette builds a palette whose slot 1 is the first colour given.
func NewPalette(colors ...core.Color) Palette {
	return append(Palette{core.ColorTransparent}, colors...)
}

// Color resolves a slot. Slot 0 and slots beyond the palette are transparent.
func (p Palette) Color(slot uint8) core.Color {
	if slot == 0 || int(slot) >= len(p) {
		return core.ColorTransparent
	}
	return p[slot]
}

// UnmarshalYAML reads a palette written as a list of colour ids where null
// marks a transparent slot, e.g. [null, 10, 6, 8].
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("palette: line %d: expected a sequence", value.Line)
	}
	out := make(Palette, len(value.Content))
	for i, item := range value.Content {
		if item.Tag == "!!null" {
			out[i] = core.ColorTransparent
			continue
		}
		var id int
		if err := item.Decode(&id); err != nil {
			return fmt.Errorf("palette: line %d: %w", item.Line, err)
		}
		if id < 0 || id >= core.NumColors {
			return fmt.Errorf("palette: line %d: colour %d out of range", item.Line, id)
		}
		out[i] = core.Color(id)
	}
	if len(out) > 0 {
		out[0] = core.ColorTransparent
	}
	*p = out
	return nil
}
