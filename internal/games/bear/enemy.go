package bear

import (
	"math"

	"github.com/vovakirdan/bear-adventure/internal/config"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/stage"
)

// Kind is an enemy variant.
type Kind int

const (
	KindMushroom Kind = iota
	KindMonster
)

func (k Kind) String() string {
	switch k {
	case KindMushroom:
		return "mushroom"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Enemy is a chasing enemy. A stomped mushroom turns into a monster and
// keeps its ID.
type Enemy struct {
	ID            int
	Kind          Kind
	X, Y          float64 // Hitbox origin
	Width, Height float64
	HP            int
	Speed         float64
	DamageTimer   int // Frames of flash and stomp immunity left
	Visible       bool
	BaseY         float64
	Hop           float64 // Cosmetic lift above BaseY
	animTimer     int
	started       bool
}

// DrawY returns where the enemy sprite is drawn.
func (e *Enemy) DrawY() float64 {
	return e.BaseY - e.Hop
}

// Hitbox returns the enemy's box in world pixels.
func (e *Enemy) Hitbox() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// params returns the variant table entry for k.
func (w *World) params(k Kind) config.BearEnemy {
	switch k {
	case KindMushroom:
		return w.cfg.Enemies.Mushroom
	case KindMonster:
		return w.cfg.Enemies.Monster
	default:
		panic("bear: unknown enemy kind")
	}
}

// become assigns the variant's body to e and stands it on the ground line.
func (w *World) become(e *Enemy, k Kind) {
	p := w.params(k)
	e.Kind = k
	e.Width = p.Width
	e.Height = p.Height
	e.HP = p.HP
	e.Speed = w.difficulty.Speed(p.Speed, w.stageIdx, w.frames)
	e.Y = stage.GroundLine - p.Height
	e.BaseY = e.Y
}

func (w *World) spawnEnemies() {
	w.enemies = w.enemies[:0]
	for _, x := range w.stage.Enemies {
		w.nextID++
		e := &Enemy{ID: w.nextID, X: x, Visible: true}
		w.become(e, KindMushroom)
		w.enemies = append(w.enemies, e)
	}
}

func (w *World) updateEnemies() {
	flash := max(w.cfg.Enemies.FlashModulus, 1)
	for _, e := range w.enemies {
		if !e.started {
			e.started = true
			if n := w.cfg.Enemies.PhaseRange; n > 0 {
				e.animTimer = w.rng.Intn(n)
			}
			e.BaseY = e.Y
		}
		e.animTimer++

		if e.DamageTimer > 0 {
			e.DamageTimer--
			e.Visible = e.DamageTimer%flash < flash/2
		} else {
			e.Visible = true
		}

		if e.X < w.player.X {
			e.X += e.Speed
		} else {
			e.X -= e.Speed
		}

		p := w.params(e.Kind)
		if p.HopPeriod > 0 {
			e.Hop = math.Abs(math.Sin(float64(e.animTimer)/p.HopPeriod)) * p.HopHeight
		}
	}
}

// stompEnemy applies a stomp to e and reports whether e was destroyed.
func (w *World) stompEnemy(e *Enemy, res *TickResult) bool {
	switch e.Kind {
	case KindMushroom:
		w.become(e, KindMonster)
		e.DamageTimer = w.cfg.Enemies.TransformGrace
		res.Cue = CueTransform
		return false
	case KindMonster:
		e.HP--
		e.DamageTimer = w.cfg.Enemies.DamageFlash
		if e.HP <= 0 {
			res.Cue = CueDefeat
			return true
		}
		res.Cue = CueStomp
		return false
	default:
		panic("bear: unknown enemy kind")
	}
}
