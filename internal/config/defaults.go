package config

import (
	_ "embed"
)

//go:embed defaults/bear.yaml
var defaultBearYAML []byte

// DefaultBearConfig returns the built-in tuning. It mirrors defaults/bear.yaml.
func DefaultBearConfig() BearConfig {
	return BearConfig{
		Screen: BearScreen{
			Width:  160,
			Height: 120,
		},
		Physics: BearPhysics{
			Gravity:       0.15,
			JumpPower:     -2.5,
			MoveSpeed:     1.0,
			MaxStepHeight: 10,
			FallLimit:     20,
			StompBounce:   0.6,
			Knockback:     0.5,
		},
		Player: BearPlayer{
			SpawnX:         16,
			Height:         10,
			MaxHP:          5,
			FootLeft:       2,
			FootRight:      6,
			HitboxLeft:     1,
			HitboxRight:    7,
			Invincibility:  60,
			BlinkModulus:   6,
			WalkFrameTicks: 6,
			LowHP:          2,
		},
		Enemies: BearEnemies{
			Mushroom: BearEnemy{
				Speed:     0.2,
				HP:        1,
				Width:     8,
				Height:    8,
				HopHeight: 1,
				HopPeriod: 8,
			},
			Monster: BearEnemy{
				Speed:     0.4,
				HP:        3,
				Width:     10,
				Height:    12,
				HopHeight: 2,
				HopPeriod: 6,
			},
			TransformGrace: 30,
			DamageFlash:    15,
			FlashModulus:   4,
			StompTolerance: 2,
			PhaseRange:     60,
		},
		Goal: BearGoal{
			Tolerance: 8,
		},
		Title: BearTitle{
			BlinkPeriod: 40,
			BlinkOn:     30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 1,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
