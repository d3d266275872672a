package host

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

func TestPatternUnmarshal(t *testing.T) {
	var p Pattern
	if err := yaml.Unmarshal([]byte(`["0120", "3"]`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Width() != 4 || p.Height() != 2 {
		t.Errorf("size = %dx%d, expected 4x2", p.Width(), p.Height())
	}
	if p[0][2] != 2 || p[1][0] != 3 {
		t.Errorf("unexpected slots %v", p)
	}
}

func TestPatternUnmarshalInvalid(t *testing.T) {
	var p Pattern
	if err := yaml.Unmarshal([]byte(`["01x0"]`), &p); err == nil {
		t.Error("expected error for non-digit slot")
	}
}

func TestPaletteUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Palette
		wantErr bool
	}{
		{"null slot", `[null, 10, 6, 8]`, Palette{core.ColorTransparent, core.ColorGreen, core.ColorBrown, core.ColorDarkGray}, false},
		{"slot zero forced transparent", `[3, 4]`, Palette{core.ColorTransparent, core.ColorBlue}, false},
		{"out of range", `[null, 42]`, nil, true},
		{"not a sequence", `red`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Palette
			err := yaml.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if len(p) != len(tt.want) {
				t.Fatalf("palette = %v, expected %v", p, tt.want)
			}
			for i := range tt.want {
				if p[i] != tt.want[i] {
					t.Errorf("slot %d = %d, expected %d", i, p[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaletteColor(t *testing.T) {
	p := NewPalette(core.ColorRed)
	if p.Color(0) != core.ColorTransparent {
		t.Error("slot 0 should be transparent")
	}
	if p.Color(1) != core.ColorRed {
		t.Errorf("slot 1 = %d, expected red", p.Color(1))
	}
	if p.Color(5) != core.ColorTransparent {
		t.Error("missing slot should be transparent")
	}
}

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	if f.Advance != 6 {
		t.Errorf("Advance = %d, expected 6", f.Advance)
	}
	for _, r := range "BEARADVENTURE0123456789:!" {
		g, ok := f.Glyph(r)
		if !ok {
			t.Errorf("missing glyph %q", r)
			continue
		}
		if g.Width() != 5 || g.Height() != 7 {
			t.Errorf("glyph %q is %dx%d, expected 5x7", r, g.Width(), g.Height())
		}
	}
	if _, ok := f.Glyph(' '); ok {
		t.Error("space should have no glyph")
	}
	if w := f.TextWidth("HP:5"); w != 24 {
		t.Errorf("TextWidth = %d, expected 24", w)
	}
}
