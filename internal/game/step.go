package game

import (
	"time"

	"github.com/tomz197/missiles/internal/object"
)

// Step advances the simulation by delta: spawn, move missiles and resolve
// ground impacts, then animate explosions. It does nothing once the game
// is over. Negative deltas are treated as zero.
func (g *Game) Step(delta time.Duration) {
	if g.phase == GameOver {
		return
	}
	delta = max(delta, 0)
	g.clock += delta

	g.spawn()

	if !g.updateMissiles(delta) {
		return
	}
	g.updateExplosions(delta)
}

func (g *Game) spawn() {
	if !g.spawner.Due(g.clock) {
		return
	}
	g.missiles = append(g.missiles, object.NewMissile(g.screen, g.score, g.rng))
	g.spawner.Record(g.clock)
	g.logger.Debug("missile spawned", "count", len(g.missiles), "interval", g.spawner.Interval)
}

// updateMissiles moves every missile and removes those past the ground.
// Returns false if an impact ended the game, in which case the missiles not
// yet visited are kept as they were.
func (g *Game) updateMissiles(delta time.Duration) bool {
	ground := g.screen.GroundLevel()
	kept := g.missiles[:0]

	for i, m := range g.missiles {
		if !m.Update(delta, ground) {
			kept = append(kept, m)
			continue
		}

		g.health = max(g.health-1, 0)
		g.hud.UpdateHUD(g.score, g.health)
		if g.health <= 0 {
			kept = append(kept, g.missiles[i+1:]...)
			g.truncateMissiles(kept)
			g.endGame()
			return false
		}
	}

	g.truncateMissiles(kept)
	return true
}

// truncateMissiles replaces the missile list with kept, clearing the
// abandoned tail of the backing array.
func (g *Game) truncateMissiles(kept []*object.Missile) {
	clear(g.missiles[len(kept):])
	g.missiles = kept
}

func (g *Game) updateExplosions(delta time.Duration) {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if !e.Update(delta) {
			kept = append(kept, e)
		}
	}
	clear(g.explosions[len(kept):])
	g.explosions = kept
}
