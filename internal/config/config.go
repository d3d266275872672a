// Package config provides YAML-based tuning for the Bear Adventure
// cartridge and the difficulty presets the CLI exposes.
package config

// BearConfig contains all tunable parameters of the cartridge.
type BearConfig struct {
	Screen     BearScreen       `yaml:"screen"`
	Physics    BearPhysics      `yaml:"physics"`
	Player     BearPlayer       `yaml:"player"`
	Enemies    BearEnemies      `yaml:"enemies"`
	Goal       BearGoal         `yaml:"goal"`
	Title      BearTitle        `yaml:"title"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BearScreen is the logical view size in pixels.
type BearScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BearPhysics defines movement constants, in pixels and frames.
type BearPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpPower     float64 `yaml:"jump_power"` // Negative: up
	MoveSpeed     float64 `yaml:"move_speed"`
	MaxStepHeight float64 `yaml:"max_step_height"`
	FallLimit     float64 `yaml:"fall_limit"`   // Depth below the ground line that ends the run
	StompBounce   float64 `yaml:"stomp_bounce"` // Fraction of jump power after a stomp
	Knockback     float64 `yaml:"knockback"`    // Fraction of jump power when hit
}

// BearPlayer defines the player body and damage handling.
type BearPlayer struct {
	SpawnX         float64 `yaml:"spawn_x"`
	Height         float64 `yaml:"height"`
	MaxHP          int     `yaml:"max_hp"`
	FootLeft       float64 `yaml:"foot_left"`  // Ground sample offsets from x
	FootRight      float64 `yaml:"foot_right"` //
	HitboxLeft     float64 `yaml:"hitbox_left"`
	HitboxRight    float64 `yaml:"hitbox_right"`
	Invincibility  int     `yaml:"invincibility"` // Frames after taking damage
	BlinkModulus   int     `yaml:"blink_modulus"`
	WalkFrameTicks int     `yaml:"walk_frame_ticks"`
	LowHP          int     `yaml:"low_hp"` // HP label turns red at or below this
}

// BearEnemy defines one enemy variant.
type BearEnemy struct {
	Speed     float64 `yaml:"speed"`
	HP        int     `yaml:"hp"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	HopHeight float64 `yaml:"hop_height"`
	HopPeriod float64 `yaml:"hop_period"`
}

// BearEnemies defines both variants and the stomp rules.
type BearEnemies struct {
	Mushroom       BearEnemy `yaml:"mushroom"`
	Monster        BearEnemy `yaml:"monster"`
	TransformGrace int       `yaml:"transform_grace"` // Invulnerable frames after a mushroom transforms
	DamageFlash    int       `yaml:"damage_flash"`    // Invulnerable frames after a monster is stomped
	FlashModulus   int       `yaml:"flash_modulus"`
	StompTolerance float64   `yaml:"stomp_tolerance"`
	PhaseRange     int       `yaml:"phase_range"` // Hop phase is randomized in [0, phase_range)
}

// BearGoal defines how close to the castle counts as a clear.
type BearGoal struct {
	Tolerance float64 `yaml:"tolerance"`
}

// BearTitle defines the title screen blink.
type BearTitle struct {
	BlinkPeriod int `yaml:"blink_period"`
	BlinkOn     int `yaml:"blink_on"`
}

// DifficultyConfig defines the optional enemy speed-up across a run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Stage index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
