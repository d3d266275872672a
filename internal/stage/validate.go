package stage

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks a stage for authoring mistakes the game itself never
// checks for: unknown tile codes, stray stair overrides, a missing goal and
// enemies spawned outside the stage. All problems are reported together.
func Validate(s *Stage) error {
	var errs []error
	name := s.Source
	if name == "" {
		name = s.Name
	}

	for i, t := range s.Tiles {
		if t > TileGoal {
			errs = append(errs, fmt.Errorf("%s: tile %d: unknown code %d", name, i, t))
		}
	}

	keys := make([]int, 0, len(s.Stairs))
	for i := range s.Stairs {
		keys = append(keys, i)
	}
	slices.Sort(keys)
	for _, i := range keys {
		h := s.Stairs[i]
		switch {
		case s.Tile(i) != TileStair:
			errs = append(errs, fmt.Errorf("%s: stair override at %d on %s tile", name, i, s.Tile(i)))
		case h <= 0 || h >= GroundLine:
			errs = append(errs, fmt.Errorf("%s: stair %d: height %g out of range", name, i, h))
		}
	}

	if _, ok := s.GoalX(); !ok {
		errs = append(errs, fmt.Errorf("%s: no goal tile", name))
	}

	for _, x := range s.Enemies {
		if x < 0 || x >= s.Length() {
			errs = append(errs, fmt.Errorf("%s: enemy spawn %g outside stage", name, x))
		}
	}

	if !s.Background.Valid() {
		errs = append(errs, fmt.Errorf("%s: background colour %d out of range", name, s.Background))
	}
	if len(s.Palettes.Ground) < 2 || len(s.Palettes.Stair) < 2 || len(s.Palettes.Castle) < 2 {
		errs = append(errs, fmt.Errorf("%s: missing scenery palette", name))
	}

	return errors.Join(errs...)
}
