package config

// DifficultyManager ramps enemy speed over a run, either per stage reached
// or per frame played.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: clamp01(cfg.InitialLevel)}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [InitialLevel, 1] at stage index stage
// after frames frames of the run.
func (d *DifficultyManager) Level(stage, frames int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}

	var done int
	switch d.cfg.Progression.Type {
	case "stage":
		done = stage
	case "time":
		done = frames
	default:
		return d.floor
	}

	t := clamp01(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.floor + t*(1-d.floor)
}

// Speed returns an enemy speed scaled by the current level. With
// progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, stage, frames int) float64 {
	if !d.IsEnabled() {
		return baseSpeed
	}
	return baseSpeed * (1 + d.Level(stage, frames)*d.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
