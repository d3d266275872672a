// Package stage loads the level tables: a row of tiles along a single ground
// line, stair heights, enemy spawn points and the palettes used to draw them.
package stage

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/host"
)

// Geometry shared by every stage.
const (
	TileSize   = 8
	GroundLine = 100.0 // y of the ground surface
)

// Tile is a stage cell code.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileGround
	TileHole
	TileStair
	TileGoal
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileHole:
		return "hole"
	case TileStair:
		return "stair"
	case TileGoal:
		return "goal"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Tiles is the tile sequence of a stage, left to right.
type Tiles []Tile

// UnmarshalYAML reads tiles written as digit strings. Rows are concatenated,
// so any row length works; spaces are ignored.
func (ts *Tiles) UnmarshalYAML(value *yaml.Node) error {
	var rows []string
	if err := value.Decode(&rows); err != nil {
		return fmt.Errorf("tiles: %w", err)
	}
	var out Tiles
	for _, row := range rows {
		for _, ch := range strings.ReplaceAll(row, " ", "") {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("tiles: line %d: invalid tile %q", value.Line, ch)
			}
			out = append(out, Tile(ch-'0'))
		}
	}
	*ts = out
	return nil
}

// Palettes colour the stage scenery.
type Palettes struct {
	Ground host.Palette `yaml:"ground"`
	Stair  host.Palette `yaml:"stair"`
	Castle host.Palette `yaml:"castle"`
}

// Stage is one level. It is immutable once loaded.
type Stage struct {
	Name       string          `yaml:"name"`
	Tiles      Tiles           `yaml:"tiles"`
	Stairs     map[int]float64 `yaml:"stairs"`
	Enemies    []float64       `yaml:"enemies"`
	Palettes   Palettes        `yaml:"palettes"`
	Background core.Color      `yaml:"background"`

	// Source is the file the stage was read from.
	Source string `yaml:"-"`
}

// Parse decodes a stage from YAML. source names it in errors.
func Parse(data []byte, source string) (*Stage, error) {
	var s Stage
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("stage: %s: %w", source, err)
	}
	if len(s.Tiles) == 0 {
		return nil, fmt.Errorf("stage: %s: no tiles", source)
	}
	s.Source = source
	return &s, nil
}

// Length returns the stage width in pixels.
func (s *Stage) Length() float64 {
	return float64(len(s.Tiles) * TileSize)
}

// Tile returns the tile at index i, or TileEmpty outside the stage.
func (s *Stage) Tile(i int) Tile {
	if i < 0 || i >= len(s.Tiles) {
		return TileEmpty
	}
	return s.Tiles[i]
}

// StairHeight returns the height of the stair at tile index i. Stairs
// without an override are one tile high.
func (s *Stage) StairHeight(i int) float64 {
	if h, ok := s.Stairs[i]; ok && h > 0 {
		return h
	}
	return TileSize
}

// GroundY returns the surface height under world x. ok is false outside
// the stage and over empty or hole tiles.
func (s *Stage) GroundY(x float64) (y float64, ok bool) {
	i := int(math.Floor(x / TileSize))
	if i < 0 || i >= len(s.Tiles) {
		return 0, false
	}
	switch s.Tiles[i] {
	case TileEmpty, TileHole:
		return 0, false
	case TileStair:
		return GroundLine - s.StairHeight(i), true
	default:
		return GroundLine, true
	}
}

// GoalX returns the x of the first goal tile.
func (s *Stage) GoalX() (float64, bool) {
	for i, t := range s.Tiles {
		if t == TileGoal {
			return float64(i * TileSize), true
		}
	}
	return 0, false
}
