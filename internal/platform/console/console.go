// Package console runs a cartridge in a desktop window with ebiten: the
// canvas is drawn pixel for pixel, the keyboard is the pad and cues are
// synthesized as square waves.
package console

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/host"
	"github.com/vovakirdan/bear-adventure/internal/registry"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

// Cartridge is a registry game that draws on a host canvas and can take a
// speaker before Reset.
type Cartridge interface {
	registry.Game
	Canvas() *host.Canvas
	SetSpeaker(s host.Speaker)
}

// Options tune a console run.
type Options struct {
	Player   string
	Settings *SettingsStore // nil keeps defaults in memory
	Store    *storage.Store // nil skips run records
	Logger   *log.Logger    // nil discards
}

// keyBindings maps keyboard keys to pad buttons.
var keyBindings = map[ebiten.Key]core.Button{
	ebiten.KeyArrowLeft:  core.ButtonLeft,
	ebiten.KeyA:          core.ButtonLeft,
	ebiten.KeyArrowRight: core.ButtonRight,
	ebiten.KeyD:          core.ButtonRight,
	ebiten.KeyArrowUp:    core.ButtonUp,
	ebiten.KeyW:          core.ButtonUp,
	ebiten.KeyArrowDown:  core.ButtonDown,
	ebiten.KeyS:          core.ButtonDown,
	ebiten.KeyZ:          core.ButtonConfirm,
	ebiten.KeySpace:      core.ButtonConfirm,
	ebiten.KeyX:          core.ButtonSecondary,
	ebiten.KeyEnter:      core.ButtonSecondary,
}

// heldButtons returns the buttons whose keys are down.
func heldButtons(pressed func(ebiten.Key) bool) core.ButtonSet {
	var held core.ButtonSet
	for k, b := range keyBindings {
		if pressed(k) {
			held = held.With(b)
		}
	}
	return held
}

// toRGBA writes palette pixels into an RGBA byte buffer.
func toRGBA(dst []byte, src []core.Color) {
	for i, c := range src {
		r, g, b := c.RGB()
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xff
	}
}

// Game is the ebiten.Game driving a cartridge.
type Game struct {
	cart     Cartridge
	opts     Options
	logger   *log.Logger
	speaker  *Speaker
	prevHeld core.ButtonSet
	paused   bool
	runSaved bool

	pixels []core.Color
	rgba   []byte
	frame  *ebiten.Image
}

// NewGame wires cart to an audio speaker and resets it.
func NewGame(cart Cartridge, cfg core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Settings == nil {
		opts.Settings = NewSettingsStore(nil)
	}

	cfg = cfg.WithDefaults()
	g := &Game{cart: cart, opts: opts, logger: logger}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	g.speaker = NewSpeaker(ctx, cfg.TickRate)
	g.speaker.SetMuted(opts.Settings.Get().Muted)
	cart.SetSpeaker(g.speaker)

	cart.Reset(cfg)
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if g.paused {
		g.prevHeld = 0
		return nil
	}

	held := heldButtons(ebiten.IsKeyPressed)
	res := g.cart.Step(core.NextInputFrame(g.prevHeld, held))
	g.prevHeld = held

	st := res.State
	switch {
	case st.GameOver && !g.runSaved:
		g.saveRun(st)
		g.runSaved = true
	case !st.GameOver:
		g.runSaved = false
	}
	return nil
}

func (g *Game) toggleMute() {
	s := g.opts.Settings.Get()
	s.Muted = !s.Muted
	g.opts.Settings.Set(s)
	g.speaker.SetMuted(s.Muted)
	if err := g.opts.Settings.Save(); err != nil {
		g.logger.Warn("could not save settings", "err", err)
	}
}

func (g *Game) saveRun(st core.GameState) {
	if g.opts.Store == nil {
		return
	}
	id, err := g.opts.Store.SaveRun(storage.Run{
		GameID:  g.cart.ID(),
		Player:  g.opts.Player,
		Stage:   st.Stage,
		Cleared: st.Cleared,
		Frames:  st.Frames,
		HP:      st.HP,
	})
	if err != nil {
		g.logger.Warn("could not save run", "err", err)
		return
	}
	g.logger.Info("run saved", "id", id, "stage", st.Stage, "cleared", st.Cleared, "frames", st.Frames)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	canvas := g.cart.Canvas()
	w, h := canvas.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if g.frame == nil || len(g.pixels) != w*h {
		g.pixels = make([]core.Color, w*h)
		g.rgba = make([]byte, w*h*4)
		g.frame = ebiten.NewImage(w, h)
	}

	canvas.Pixels(g.pixels)
	toRGBA(g.rgba, g.pixels)
	g.frame.WritePixels(g.rgba)
	screen.DrawImage(g.frame, nil)
}

// Layout implements ebiten.Game. The logical screen is the canvas view.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cart.Canvas().Size()
}

// Run opens the window and blocks until it is closed.
func Run(cart Cartridge, cfg core.RuntimeConfig, opts Options) error {
	cfg = cfg.WithDefaults()
	g := NewGame(cart, cfg, opts)

	w, h := cart.Canvas().Size()
	scale := g.opts.Settings.Get().Scale
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(cart.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	err := ebiten.RunGame(g)
	g.speaker.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
