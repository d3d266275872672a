package bear

import "github.com/vovakirdan/bear-adventure/internal/stage"

// Visual is the player's drawn pose.
type Visual int

const (
	VisualStand Visual = iota
	VisualWalkA
	VisualWalkB
)

func (v Visual) String() string {
	switch v {
	case VisualWalkA:
		return "walk_a"
	case VisualWalkB:
		return "walk_b"
	default:
		return "stand"
	}
}

// Player is the bear.
type Player struct {
	X, Y        float64
	VY          float64
	OnGround    bool
	FacingRight bool
	HP          int
	Invincible  int // Frames of damage immunity left
	Visible     bool
	Visual      Visual
	animTimer   int
}

func (w *World) spawnPlayer() {
	w.player = Player{
		X:           w.cfg.Player.SpawnX,
		Y:           stage.GroundLine - w.cfg.Player.Height,
		OnGround:    true,
		FacingRight: true,
		HP:          w.cfg.Player.MaxHP,
		Visible:     true,
		Visual:      VisualStand,
		animTimer:   w.player.animTimer,
	}
}

// footing samples the ground under both feet for a player at x.
func (w *World) footing(x float64) (left float64, leftOK bool, right float64, rightOK bool) {
	left, leftOK = w.stage.GroundY(x + w.cfg.Player.FootLeft)
	right, rightOK = w.stage.GroundY(x + w.cfg.Player.FootRight)
	return
}

// canMoveTo runs the step height check for a horizontal move to nextX.
func (w *World) canMoveTo(nextX float64) bool {
	p := &w.player
	if !p.OnGround {
		return true
	}

	cur := stage.GroundLine
	l, lok, r, rok := w.footing(p.X)
	switch {
	case lok && rok:
		cur = min(l, r)
	case lok:
		cur = l
	case rok:
		cur = r
	}

	nl, nlok, nr, nrok := w.footing(nextX)
	var next float64
	switch {
	case !nlok && !nrok:
		// Walking off into a hole is always allowed
		return true
	case nlok && nrok:
		next = min(nl, nr)
	case nlok:
		next = nl
	default:
		next = nr
	}

	return cur-next <= w.cfg.Physics.MaxStepHeight
}

// movePlayer applies horizontal input and returns whether the player moved.
func (w *World) movePlayer(left, right bool) bool {
	p := &w.player
	speed := w.cfg.Physics.MoveSpeed
	moving := false

	if left && p.X > 0 {
		if next := p.X - speed; w.canMoveTo(next) {
			p.X = next
			p.FacingRight = false
			moving = true
		}
	}
	if right {
		if next := p.X + speed; w.canMoveTo(next) {
			p.X = next
			p.FacingRight = true
			moving = true
		}
	}
	return moving
}

// animate picks the pose. Airborne frames keep the last pose.
func (w *World) animate(moving bool) {
	p := &w.player
	if !p.OnGround {
		return
	}
	if !moving {
		p.animTimer = 0
		p.Visual = VisualStand
		return
	}
	p.animTimer++
	ticks := max(w.cfg.Player.WalkFrameTicks, 1)
	if (p.animTimer/ticks)%2 == 0 {
		p.Visual = VisualWalkA
	} else {
		p.Visual = VisualWalkB
	}
}

// fall integrates gravity and resolves landing.
func (w *World) fall() {
	p := &w.player
	p.VY += w.cfg.Physics.Gravity
	p.Y += p.VY

	l, lok, r, rok := w.footing(p.X)
	supported := lok && rok
	if supported && p.VY >= 0 {
		if surface := min(l, r); p.Y >= surface-w.cfg.Player.Height {
			p.Y = surface - w.cfg.Player.Height
			p.VY = 0
			p.OnGround = true
			return
		}
	}
	if p.VY < 0 || !supported {
		p.OnGround = false
	}
}

// tickInvincibility counts down damage immunity and drives the blink.
func (w *World) tickInvincibility() {
	p := &w.player
	if p.Invincible <= 0 {
		p.Visible = true
		return
	}
	p.Invincible--
	m := max(w.cfg.Player.BlinkModulus, 1)
	p.Visible = p.Invincible%m < m/2
}

// damagePlayer applies one hit. It reports whether the hit ended the run.
func (w *World) damagePlayer(res *TickResult) bool {
	p := &w.player
	if p.Invincible > 0 {
		return false
	}
	p.HP = max(p.HP-1, 0)
	p.Invincible = w.cfg.Player.Invincibility
	p.VY = w.cfg.Physics.JumpPower * w.cfg.Physics.Knockback
	res.HPChanged = true
	res.Cue = CueDamage

	if p.HP <= 0 {
		w.enter(StateGameOver, res)
		res.Cue = CueGameOver
		return true
	}
	return false
}
