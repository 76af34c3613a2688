package game

import (
	"slices"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
)

// HandlePointer applies a pointer event at (x, y) in simulation space.
// At most one missile is destroyed; if none is under the pointer the one
// nearest impact is taken instead. Returns false when nothing changed,
// which happens with no missiles or after game over.
func (g *Game) HandlePointer(x, y float64) bool {
	if g.phase == GameOver || len(g.missiles) == 0 {
		return false
	}

	i := g.hitTest.Select(g.missiles, x, y)
	if i < 0 || i >= len(g.missiles) {
		return false
	}
	m := g.missiles[i]

	g.missiles = slices.Delete(g.missiles, i, i+1)

	g.score += config.ScorePerMissile
	g.explosions = append(g.explosions, object.NewExplosion(m.X, m.Y, m.Radius))
	g.playImpact()
	g.hud.UpdateHUD(g.score, g.health)
	return true
}

// playImpact triggers the audio cue, containing any panic from the sink.
func (g *Game) playImpact() {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("impact cue failed", "err", r)
		}
	}()
	g.audio.PlayImpact()
}
