// Package assets holds the cartridge's static content: sprite bitmaps,
// actor palettes and sound cues, embedded as YAML.
package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bear-adventure/internal/host"
)

//go:embed sprites.yaml
var spritesYAML []byte

//go:embed sounds.yaml
var soundsYAML []byte

// Pattern names.
const (
	BearStand = "bear_stand"
	BearWalkA = "bear_walk_a"
	BearWalkB = "bear_walk_b"
	Mushroom  = "mushroom"
	Monster   = "monster"
	Ground    = "ground"
	Stair     = "stair"
	Castle    = "castle"
)

// Palette names.
const (
	PaletteBear     = "bear"
	PaletteMushroom = "mushroom"
	PaletteMonster  = "monster"
)

// Cue names.
const (
	CueJump      = "jump"
	CueStomp     = "stomp"
	CueTransform = "transform"
	CueDefeat    = "defeat"
	CueDamage    = "damage"
	CueGameOver  = "gameover"
	CueClear     = "clear"
)

var (
	requiredPatterns = []string{BearStand, BearWalkA, BearWalkB, Mushroom, Monster, Ground, Stair, Castle}
	requiredPalettes = []string{PaletteBear, PaletteMushroom, PaletteMonster}
	requiredCues     = []string{CueJump, CueStomp, CueTransform, CueDefeat, CueDamage, CueGameOver, CueClear}
)

// Set is the loaded asset bundle.
type Set struct {
	Patterns map[string]host.Pattern `yaml:"patterns"`
	Palettes map[string]host.Palette `yaml:"palettes"`
	Cues     map[string][]host.Note  `yaml:"cues"`
}

// Load parses the embedded sprite and sound files.
func Load() (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(spritesYAML, &set); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprites: %w", err)
	}
	var sounds struct {
		Cues map[string][]host.Note `yaml:"cues"`
	}
	if err := yaml.Unmarshal(soundsYAML, &sounds); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sounds: %w", err)
	}
	set.Cues = sounds.Cues

	if err := set.check(); err != nil {
		return nil, err
	}
	return &set, nil
}

// MustLoad is like Load but panics on error. The embedded files are part of
// the binary, so a failure is a build defect.
func MustLoad() *Set {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}

func (s *Set) check() error {
	for _, name := range requiredPatterns {
		if _, ok := s.Patterns[name]; !ok {
			return fmt.Errorf("assets: missing pattern %q", name)
		}
	}
	for _, name := range requiredPalettes {
		if _, ok := s.Palettes[name]; !ok {
			return fmt.Errorf("assets: missing palette %q", name)
		}
	}
	for _, name := range requiredCues {
		if len(s.Cues[name]) == 0 {
			return fmt.Errorf("assets: missing cue %q", name)
		}
	}
	return nil
}

// Pattern returns a named pattern, or nil.
func (s *Set) Pattern(name string) host.Pattern {
	return s.Patterns[name]
}

// Palette returns a named palette, or nil.
func (s *Set) Palette(name string) host.Palette {
	return s.Palettes[name]
}

// Cue returns a named note sequence, or nil.
func (s *Set) Cue(name string) []host.Note {
	return s.Cues[name]
}
