// Package bear implements the Bear Adventure simulation: a side-scrolling
// platformer where a bear walks and jumps over holes and stairs, stomps
// mushrooms and the monsters they turn into, and reaches the castle at the
// end of each stage.
//
// World is pure game state. It never touches a display or speaker; the
// cartridge package binds it to a host.
package bear

import (
	"math/rand"

	"github.com/vovakirdan/bear-adventure/internal/config"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/stage"
)

// World holds all mutable game state.
type World struct {
	cfg        config.BearConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	stages   []*stage.Stage
	stage    *stage.Stage
	stageIdx int
	goalX    float64
	hasGoal  bool

	state      State
	player     Player
	enemies    []*Enemy
	nextID     int
	cameraX    float64
	titleBlink int
	frames     int // Playing frames since the run started
}

// NewWorld creates a world on the title screen. stages must not be empty.
func NewWorld(cfg config.BearConfig, stages []*stage.Stage, seed int64) *World {
	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		stages:     stages,
	}
	w.showTitle()
	return w
}

// SetStages replaces the stage list. The current stage keeps running; the
// new tables are used from the next restart.
func (w *World) SetStages(stages []*stage.Stage) {
	if len(stages) == 0 {
		return
	}
	w.stages = stages
}

// Tick advances the world by one frame.
func (w *World) Tick(in core.InputFrame) TickResult {
	res := TickResult{State: w.state}

	switch w.state {
	case StateTitle:
		w.titleBlink++
		if in.JustPressed(core.ButtonConfirm) {
			w.stageIdx = 0
			w.frames = 0
			w.restart(&res)
		}
	case StatePlaying:
		w.tickPlaying(in, &res)
	case StateGameOver, StateAllClear:
		if in.JustPressed(core.ButtonSecondary) {
			w.showTitle()
			w.enter(StateTitle, &res)
		}
	case StateClear:
		if in.JustPressed(core.ButtonConfirm) || in.JustPressed(core.ButtonSecondary) {
			w.stageIdx++
			w.restart(&res)
		}
	}
	return res
}

func (w *World) tickPlaying(in core.InputFrame, res *TickResult) {
	w.frames++
	p := &w.player

	moving := w.movePlayer(in.IsHeld(core.ButtonLeft), in.IsHeld(core.ButtonRight))
	w.animate(moving)

	if in.JustPressed(core.ButtonConfirm) && p.OnGround {
		p.VY = w.cfg.Physics.JumpPower
		p.OnGround = false
		res.Cue = CueJump
	}

	w.fall()

	if p.Y > stage.GroundLine+w.cfg.Physics.FallLimit {
		w.enter(StateGameOver, res)
		res.Cue = CueGameOver
		return
	}

	w.tickInvincibility()
	w.updateEnemies()

	if w.collide(res) {
		return
	}

	if w.hasGoal && p.X >= w.goalX-w.cfg.Goal.Tolerance {
		w.clearStage(res)
		return
	}

	w.updateCamera()
}

// restart builds the current stage and enters StatePlaying.
func (w *World) restart(res *TickResult) {
	w.stageIdx = core.Clamp(w.stageIdx, 0, len(w.stages)-1)
	w.stage = w.stages[w.stageIdx]
	w.goalX, w.hasGoal = w.stage.GoalX()

	w.cameraX = 0
	w.spawnPlayer()
	w.spawnEnemies()
	w.updateCamera()
	w.enter(StatePlaying, res)
}

func (w *World) showTitle() {
	w.state = StateTitle
	w.stageIdx = 0
	w.stage = w.stages[0]
	w.titleBlink = 0
	w.enemies = w.enemies[:0]
	w.cameraX = 0
}

func (w *World) clearStage(res *TickResult) {
	if w.stageIdx+1 < len(w.stages) {
		w.enter(StateClear, res)
	} else {
		w.enter(StateAllClear, res)
	}
	res.Cue = CueClear
}

func (w *World) enter(s State, res *TickResult) {
	w.state = s
	res.State = s
	res.Entered = true
}

func (w *World) updateCamera() {
	screenW := float64(w.cfg.Screen.Width)
	w.cameraX = core.ClampF(w.player.X-screenW/3, 0, w.stage.Length()-screenW)
}

// State returns the current state.
func (w *World) State() State {
	return w.state
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns copies of the live enemies.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	for i, e := range w.enemies {
		out[i] = *e
	}
	return out
}

// CameraX returns the left edge of the view.
func (w *World) CameraX() float64 {
	return w.cameraX
}

// Stage returns the stage being played, or the first stage on the title screen.
func (w *World) Stage() *stage.Stage {
	return w.stage
}

// StageIndex returns the 0-based index of the current stage.
func (w *World) StageIndex() int {
	return w.stageIdx
}

// StageCount returns the number of stages in a run.
func (w *World) StageCount() int {
	return len(w.stages)
}

// GoalX returns the x of the goal tile.
func (w *World) GoalX() (float64, bool) {
	return w.goalX, w.hasGoal
}

// Frames returns the playing frames since the run started.
func (w *World) Frames() int {
	return w.frames
}

// TitleTextVisible reports whether the blinking start prompt is shown.
func (w *World) TitleTextVisible() bool {
	period := max(w.cfg.Title.BlinkPeriod, 1)
	return w.titleBlink%period < w.cfg.Title.BlinkOn
}

// Config returns the tuning the world runs with.
func (w *World) Config() config.BearConfig {
	return w.cfg
}
