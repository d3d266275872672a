package stage

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed stages/*.yaml
var embedded embed.FS

// LoadEmbedded returns the built-in stages in play order.
func LoadEmbedded() ([]*Stage, error) {
	sub, err := fs.Sub(embedded, "stages")
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}
	return loadFS(sub)
}

// LoadDir reads every *.yaml / *.yml file in dir. Stages are played in
// file name order, so prefix names with a number.
func LoadDir(dir string) ([]*Stage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stage: cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("stage: %s is not a directory", dir)
	}
	stages, err := loadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	for _, s := range stages {
		s.Source = filepath.Join(dir, s.Source)
	}
	return stages, nil
}

func loadFS(fsys fs.FS) ([]*Stage, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsStageFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	var stages []*Stage
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("stage: cannot read %s: %w", name, err)
		}
		s, err := Parse(data, name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	if len(stages) == 0 {
		return nil, errors.New("stage: no stage files found")
	}
	return stages, nil
}

// IsStageFile reports whether path has a stage file extension.
func IsStageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
