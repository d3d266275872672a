package cartridge

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bear-adventure/internal/assets"
	"github.com/vovakirdan/bear-adventure/internal/config"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/games/bear"
	"github.com/vovakirdan/bear-adventure/internal/host"
	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/stage"
)

// ID is the registry id of the cartridge.
const ID = "bear"

// Settings set from the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	stageDir         string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's tuning.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStageDir makes new games load stages from dir instead of the built-in set.
func SetStageDir(dir string) {
	stageDir = dir
}

// LoadStages returns the stages new games use.
func LoadStages() ([]*stage.Stage, error) {
	if stageDir != "" {
		return stage.LoadDir(stageDir)
	}
	return stage.LoadEmbedded()
}

// Game adapts a Cartridge to the platform's registry.Game. Its display is
// an in-memory Canvas that terminal platforms rasterize into cells and
// pixel platforms read back as pixels.
type Game struct {
	mu      sync.Mutex // guards pending, which watcher goroutines set
	cart    *Cartridge
	canvas  *host.Canvas
	speaker host.Speaker
	logger  *log.Logger
	pending []*stage.Stage
}

// NewGame creates an unstarted game. Reset must be called before Step.
func NewGame() *Game {
	return &Game{
		speaker: &host.Recorder{},
		logger:  log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bear Adventure"
}

// SetLogger sets the logger used from the next Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// SetSpeaker replaces the default silent speaker from the next Reset.
func (g *Game) SetSpeaker(s host.Speaker) {
	if s != nil {
		g.speaker = s
	}
}

// ReloadStages queues a new stage list. It takes effect at the next restart
// and is safe to call from a watcher goroutine.
func (g *Game) ReloadStages(stages []*stage.Stage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = stages
}

// Reset loads config, stages and assets and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBear(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBearConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBearPreset(&cfg, difficultyPreset)
	}

	stages, err := LoadStages()
	if err != nil {
		g.logger.Warn("using built-in stages", "err", err)
		if stages, err = stage.LoadEmbedded(); err != nil {
			panic(err)
		}
	}

	seed := runtime.WithDefaults().Seed

	g.canvas = host.NewCanvas(host.ViewBox{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)})
	world := bear.NewWorld(cfg, stages, seed)

	g.cart = New(world, assets.MustLoad(), g.canvas, g.speaker, g.logger)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	if g.pending != nil {
		g.cart.World().SetStages(g.pending)
		g.pending = nil
	}
	g.mu.Unlock()

	g.cart.OnFrame(in)
	return core.StepResult{State: g.State()}
}

// Render draws the canvas into a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.canvas.RasterizeCells(dst)
}

// Canvas returns the display the cartridge draws on.
func (g *Game) Canvas() *host.Canvas {
	return g.canvas
}

// Cartridge returns the running cartridge.
func (g *Game) Cartridge() *Cartridge {
	return g.cart
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.cart.World()
	st := core.GameState{
		HP:     w.Player().HP,
		Frames: w.Frames(),
	}
	switch w.State() {
	case bear.StateTitle:
	case bear.StatePlaying, bear.StateClear:
		st.Stage = w.StageIndex() + 1
		st.Playing = w.State() == bear.StatePlaying
	case bear.StateGameOver:
		st.Stage = w.StageIndex() + 1
		st.GameOver = true
	case bear.StateAllClear:
		st.Stage = w.StageIndex() + 1
		st.GameOver = true
		st.Cleared = true
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return NewGame()
	})
}
