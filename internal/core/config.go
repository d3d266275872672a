package core

import "time"

// DefaultTickRate is the frame rate cartridges are tuned for.
const DefaultTickRate = 60

// RuntimeConfig is what a platform tells a cartridge when it resets it.
type RuntimeConfig struct {
	ScreenW  int   // host screen width in cells; pixel hosts leave it 0
	ScreenH  int   // host screen height in cells
	TickRate int   // frames per second, 0 for DefaultTickRate
	Seed     int64 // RNG seed, 0 for a time-based one
}

// WithDefaults fills zero TickRate and Seed. The seed is taken from the
// clock, so calling it twice may give different configs.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState summarizes a running cartridge for the platform.
// Returned by Game.State() and used to decide when a run is recorded.
type GameState struct {
	Stage    int  // 1-based stage number currently loaded (0 on the title screen)
	HP       int  // Player hit points
	Frames   int  // Frames played in the current run
	Playing  bool // Whether the simulation is in the playing phase
	GameOver bool // Whether the run has ended (game over or all stages cleared)
	Cleared  bool // Whether the run ended by clearing the final stage
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
