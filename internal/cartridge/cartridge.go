// Package cartridge binds a bear.World to the host surfaces. It owns every
// display handle it creates and releases all of them before a new scene is
// built, so no visual outlives its stage.
package cartridge

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bear-adventure/internal/assets"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/games/bear"
	"github.com/vovakirdan/bear-adventure/internal/host"
	"github.com/vovakirdan/bear-adventure/internal/stage"
)

// Screen text placement, in view pixels.
const (
	hudX        = 2
	stageLabelY = 2
	hpLabelY    = 12
	messageY    = 50
	hintY       = 70
)

type enemyView struct {
	sprite host.Sprite
	kind   bear.Kind
}

// Cartridge drives one World against a display and a speaker.
type Cartridge struct {
	world   *bear.World
	assets  *assets.Set
	display host.Display
	speaker host.Speaker
	logger  *log.Logger

	scene      []host.Entity // scenery and title items
	player     host.Sprite
	visual     bear.Visual
	enemies    map[int]*enemyView
	seen       map[int]bool
	stageLabel host.Label
	hpLabel    host.Label
	startLabel host.Label
	message    host.Label
	hint       host.Label
}

// New creates a cartridge showing the title screen. A nil logger discards output.
func New(world *bear.World, set *assets.Set, display host.Display, speaker host.Speaker, logger *log.Logger) *Cartridge {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Cartridge{
		world:   world,
		assets:  set,
		display: display,
		speaker: speaker,
		logger:  logger,
		enemies: make(map[int]*enemyView),
		seen:    make(map[int]bool),
	}
	c.buildTitle()
	return c
}

// World returns the simulated world.
func (c *Cartridge) World() *bear.World {
	return c.world
}

// OnFrame runs one frame: it ticks the world, plays the frame's cue and
// brings the display in line with the new state.
func (c *Cartridge) OnFrame(in core.InputFrame) bear.TickResult {
	prev := c.world.State()
	res := c.world.Tick(in)

	if res.Cue != bear.CueNone {
		c.speaker.Stop()
		c.speaker.Play(c.assets.Cue(res.Cue.String()))
	}
	if res.HPChanged {
		c.refreshHP()
	}

	if res.Entered {
		c.logger.Debug("state", "from", prev, "to", res.State, "stage", c.world.StageIndex()+1, "frames", c.world.Frames())
		switch res.State {
		case bear.StateTitle:
			c.buildTitle()
		case bear.StatePlaying:
			c.buildStage()
		case bear.StateGameOver, bear.StateClear, bear.StateAllClear:
			c.syncActors()
			c.showMessage(res.State)
		}
	}

	switch c.world.State() {
	case bear.StateTitle:
		c.startLabel.SetVisible(c.world.TitleTextVisible())
	case bear.StatePlaying:
		c.syncActors()
	}
	return res
}

// release removes every handle the cartridge holds.
func (c *Cartridge) release() {
	for _, e := range c.scene {
		e.Remove()
	}
	c.scene = c.scene[:0]

	for id, v := range c.enemies {
		v.sprite.Remove()
		delete(c.enemies, id)
	}

	for _, e := range []host.Entity{c.player, c.stageLabel, c.hpLabel, c.startLabel, c.message, c.hint} {
		if e != nil {
			e.Remove()
		}
	}
	c.player = nil
	c.stageLabel, c.hpLabel, c.startLabel = nil, nil, nil
	c.message, c.hint = nil, nil
}

func (c *Cartridge) screenSize() (float64, float64) {
	cfg := c.world.Config()
	return float64(cfg.Screen.Width), float64(cfg.Screen.Height)
}

func (c *Cartridge) buildTitle() {
	c.release()
	w, h := c.screenSize()
	c.display.SetViewBox(host.ViewBox{W: w, H: h})

	brown := host.NewPalette(core.ColorBrown)
	c.scene = append(c.scene,
		c.display.AddText("BEAR", brown, 56, 30),
		c.display.AddText("ADVENTURE", brown, 40, 42),
		c.display.AddSprite(c.assets.Pattern(assets.BearStand), c.assets.Palette(assets.PaletteBear), 76, 55),
	)
	c.startLabel = c.display.AddText("PRESS Z", host.NewPalette(core.ColorWhite), 52, 90)
}

func (c *Cartridge) buildStage() {
	c.release()
	s := c.world.Stage()
	c.logger.Debug("build stage", "stage", c.world.StageIndex()+1, "name", s.Name, "tiles", len(s.Tiles), "enemies", len(s.Enemies))

	w, _ := c.screenSize()
	sky := host.SolidPattern(int(s.Length()+w), int(stage.GroundLine))
	c.scene = append(c.scene, c.display.AddSprite(sky, host.NewPalette(s.Background), 0, 0))

	ground := c.assets.Pattern(assets.Ground)
	block := c.assets.Pattern(assets.Stair)
	for i, tile := range s.Tiles {
		x := float64(i * stage.TileSize)
		switch tile {
		case stage.TileGround, stage.TileGoal:
			c.scene = append(c.scene, c.display.AddSprite(ground, s.Palettes.Ground, x, stage.GroundLine))
		case stage.TileStair:
			c.scene = append(c.scene, c.display.AddSprite(ground, s.Palettes.Ground, x, stage.GroundLine))
			height := s.StairHeight(i)
			for dh := 0.0; dh < height; dh += stage.TileSize {
				c.scene = append(c.scene, c.display.AddSprite(block, s.Palettes.Stair, x, stage.GroundLine-stage.TileSize-dh))
			}
		}
		if tile == stage.TileGoal {
			c.scene = append(c.scene, c.display.AddSprite(c.assets.Pattern(assets.Castle), s.Palettes.Castle, x-4, stage.GroundLine-24))
		}
	}

	p := c.world.Player()
	c.visual = p.Visual
	c.player = c.display.AddSprite(c.patternFor(p.Visual), c.assets.Palette(assets.PaletteBear), p.X, p.Y)

	cam := c.world.CameraX()
	c.stageLabel = c.display.AddText(fmt.Sprintf("STAGE %d", c.world.StageIndex()+1), host.NewPalette(core.ColorLightYellow), cam+hudX, stageLabelY)
	c.hpLabel = c.display.AddText("", host.NewPalette(core.ColorWhite), cam+hudX, hpLabelY)
	c.refreshHP()
}

func (c *Cartridge) refreshHP() {
	if c.hpLabel == nil {
		return
	}
	p := c.world.Player()
	col := core.ColorWhite
	if p.HP <= c.world.Config().Player.LowHP {
		col = core.ColorRed
	}
	c.hpLabel.SetText(fmt.Sprintf("HP:%d", p.HP))
	c.hpLabel.SetPalette(host.NewPalette(col))
}

// syncActors moves the player, enemies, HUD and view to the world state.
func (c *Cartridge) syncActors() {
	cam := c.world.CameraX()
	w, h := c.screenSize()
	c.display.SetViewBox(host.ViewBox{X: cam, W: w, H: h})

	if c.player != nil {
		p := c.world.Player()
		if p.Visual != c.visual {
			c.player.SetPattern(c.patternFor(p.Visual))
			c.visual = p.Visual
		}
		c.player.MoveTo(p.X, p.Y)
		c.player.SetVisible(p.Visible)
	}

	clear(c.seen)
	for _, e := range c.world.Enemies() {
		c.seen[e.ID] = true
		v, ok := c.enemies[e.ID]
		if !ok {
			v = &enemyView{
				sprite: c.display.AddSprite(c.enemyPattern(e.Kind), c.enemyPalette(e.Kind), e.X, e.DrawY()),
				kind:   e.Kind,
			}
			c.enemies[e.ID] = v
		}
		if v.kind != e.Kind {
			v.sprite.SetPattern(c.enemyPattern(e.Kind))
			v.sprite.SetPalette(c.enemyPalette(e.Kind))
			v.kind = e.Kind
		}
		v.sprite.MoveTo(e.X, e.DrawY())
		v.sprite.SetVisible(e.Visible)
	}
	for id, v := range c.enemies {
		if !c.seen[id] {
			v.sprite.Remove()
			delete(c.enemies, id)
		}
	}

	if c.stageLabel != nil {
		c.stageLabel.MoveTo(cam+hudX, stageLabelY)
	}
	if c.hpLabel != nil {
		c.hpLabel.MoveTo(cam+hudX, hpLabelY)
	}
}

func (c *Cartridge) showMessage(s bear.State) {
	var (
		text, hint string
		textX      float64
		hintX      float64
		col        core.Color
	)
	switch s {
	case bear.StateGameOver:
		text, textX, col = "GAME OVER", 52, core.ColorRed
		hint, hintX = "X:TITLE", 56
	case bear.StateClear:
		text, textX, col = "STAGE CLEAR!", 44, core.ColorGreen
		hint, hintX = "X:NEXT STAGE", 40
	case bear.StateAllClear:
		text, textX, col = "ALL CLEAR!", 48, core.ColorLightYellow
		hint, hintX = "X:TITLE", 56
	default:
		return
	}

	cam := c.world.CameraX()
	c.message = c.display.AddText(text, host.NewPalette(col), cam+textX, messageY)
	c.hint = c.display.AddText(hint, host.NewPalette(core.ColorWhite), cam+hintX, hintY)
}

func (c *Cartridge) patternFor(v bear.Visual) host.Pattern {
	switch v {
	case bear.VisualWalkA:
		return c.assets.Pattern(assets.BearWalkA)
	case bear.VisualWalkB:
		return c.assets.Pattern(assets.BearWalkB)
	default:
		return c.assets.Pattern(assets.BearStand)
	}
}

func (c *Cartridge) enemyPattern(k bear.Kind) host.Pattern {
	if k == bear.KindMonster {
		return c.assets.Pattern(assets.Monster)
	}
	return c.assets.Pattern(assets.Mushroom)
}

func (c *Cartridge) enemyPalette(k bear.Kind) host.Palette {
	if k == bear.KindMonster {
		return c.assets.Palette(assets.PaletteMonster)
	}
	return c.assets.Palette(assets.PaletteMushroom)
}
