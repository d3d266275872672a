package host

import (
	_ "embed"
	"fmt"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed font.yaml
var fontYAML []byte

// Font is the fixed-width bitmap font used to rasterize labels on pixel hosts.
type Font struct {
	Advance int                `yaml:"advance"`
	Glyphs  map[string]Pattern `yaml:"glyphs"`
}

// DefaultFont parses the embedded font.
func DefaultFont() (*Font, error) {
	var f Font
	if err := yaml.Unmarshal(fontYAML, &f); err != nil {
		return nil, fmt.Errorf("host: cannot parse font: %w", err)
	}
	return &f, nil
}

// Glyph returns the pattern for r. Lowercase letters use the uppercase glyph;
// unknown runes (including space) have no pattern.
func (f *Font) Glyph(r rune) (Pattern, bool) {
	p, ok := f.Glyphs[string(unicode.ToUpper(r))]
	return p, ok
}

// TextWidth returns the width of text in pixels.
func (f *Font) TextWidth(text string) int {
	return len([]rune(text)) * f.Advance
}
