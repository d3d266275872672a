package bear

import "github.com/vovakirdan/bear-adventure/internal/core"

// collide hit-tests the player against every enemy. It reports whether the
// run ended, in which case the rest of the tick is skipped.
func (w *World) collide(res *TickResult) bool {
	p := &w.player
	if p.Invincible > 0 {
		return false
	}

	box := core.NewRectF(
		p.X+w.cfg.Player.HitboxLeft, p.Y,
		w.cfg.Player.HitboxRight-w.cfg.Player.HitboxLeft, w.cfg.Player.Height,
	)

	over := false
	defeated := 0
	for _, e := range w.enemies {
		if e.HP <= 0 || e.DamageTimer > 0 {
			continue
		}
		hit := e.Hitbox()
		if !box.Intersects(hit) {
			continue
		}

		if p.VY > 0 && box.Bottom() <= hit.Y+e.Height/2+w.cfg.Enemies.StompTolerance {
			p.VY = w.cfg.Physics.JumpPower * w.cfg.Physics.StompBounce
			if w.stompEnemy(e, res) {
				defeated++
			}
			continue
		}

		if w.damagePlayer(res) {
			over = true
			break
		}
	}

	if defeated > 0 {
		alive := w.enemies[:0]
		for _, e := range w.enemies {
			if e.HP > 0 {
				alive = append(alive, e)
			}
		}
		clear(w.enemies[len(alive):])
		w.enemies = alive
	}
	return over
}
