package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBear loads the cartridge configuration. Files are read over the
// hardcoded defaults, so a file only needs the keys it changes.
//
// An explicit customPath must exist and parse. Otherwise the first readable
// file among ~/.bear/configs/bear.yaml and ./configs/bear.yaml wins, then
// the embedded default.
func LoadBear(customPath string) (BearConfig, error) {
	if customPath != "" {
		return readBear(customPath)
	}

	for _, path := range searchPaths("bear.yaml") {
		if cfg, err := readBear(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBearConfig()
	if err := yaml.Unmarshal(defaultBearYAML, &cfg); err != nil {
		return DefaultBearConfig(), nil
	}
	return cfg, nil
}

// readBear decodes the file at path over the hardcoded defaults. On error
// the defaults are returned untouched.
func readBear(path string) (BearConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBearConfig(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg := DefaultBearConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBearConfig(), fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit locations of a config file.
func searchPaths(name string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".bear", "configs", name))
	}
	return append(paths, filepath.Join("configs", name))
}

// ApplyBearPreset modifies the config based on a difficulty preset.
func ApplyBearPreset(cfg *BearConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Player.Invincibility = 90
		cfg.Enemies.Monster.HP = 2
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Player.Invincibility = 40
		cfg.Enemies.Monster.HP = 4
		cfg.Enemies.Monster.Speed = 0.5
	}
}
