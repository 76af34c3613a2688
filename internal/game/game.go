// Package game is the missile defense simulation: spawning, kinematics,
// hit-testing, explosions and the running/over state machine. A Game is
// not safe for concurrent use; frontends drive it from one goroutine.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
)

// Phase is the state of the game.
type Phase int

const (
	Running  Phase = iota // Missiles fall, input scores
	GameOver              // Terminal until Reset
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Options configures a Game. Nil sinks are replaced with no-ops.
type Options struct {
	Screen   object.Screen
	HitTest  HitTester
	Renderer Renderer
	Audio    Audio
	HUD      HUD
	Rand     *rand.Rand
	Logger   *log.Logger
}

// Game owns all simulation state.
type Game struct {
	screen     object.Screen
	planet     object.Planet
	stars      []object.Star
	missiles   []*object.Missile
	explosions []*object.Explosion

	score  int
	health int
	phase  Phase

	spawner *Spawner
	clock   time.Duration // Sum of step deltas since reset

	hitTest  HitTester
	renderer Renderer
	audio    Audio
	hud      HUD
	rng      *rand.Rand
	logger   *log.Logger
}

// New creates a game in the Running phase and notifies the HUD.
func New(opts Options) *Game {
	g := &Game{
		hitTest:  opts.HitTest,
		renderer: opts.Renderer,
		audio:    opts.Audio,
		hud:      opts.HUD,
		rng:      opts.Rand,
		logger:   opts.Logger,
		spawner:  NewSpawner(),
	}
	if g.hitTest == nil {
		g.hitTest = RadialHitTest{Enlargement: config.HitEnlargement}
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.hud == nil {
		g.hud = nopHUD{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.stars = object.NewStarField(config.StarCount, g.rng)
	g.setScreen(opts.Screen)
	g.Reset()
	return g
}

// Reset clears every entity and restores score, health, spawn interval and
// clock. It may be called in any phase.
func (g *Game) Reset() {
	clear(g.missiles)
	g.missiles = g.missiles[:0]
	clear(g.explosions)
	g.explosions = g.explosions[:0]

	g.score = 0
	g.health = config.InitialHealth
	g.phase = Running
	g.spawner.Reset()
	g.clock = 0

	g.logger.Debug("game reset")
	g.hud.UpdateHUD(g.score, g.health)
}

// Resize updates the viewport. Only spawn placement, the ground level and
// the backdrop depend on it.
func (g *Game) Resize(width, height int) {
	screen := object.NewScreen(width, height)
	if screen == g.screen {
		return
	}
	g.stars = object.NewStarField(config.StarCount, g.rng)
	g.setScreen(screen)
}

func (g *Game) setScreen(screen object.Screen) {
	g.screen = object.NewScreen(screen.Width, screen.Height)
	g.planet = object.PlanetFor(g.screen)
}

// Screen returns the current viewport.
func (g *Game) Screen() object.Screen { return g.screen }

// Score returns the number of missiles destroyed since reset.
func (g *Game) Score() int { return g.score }

// Health returns the remaining health.
func (g *Game) Health() int { return g.health }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.phase == GameOver }

// SpawnInterval returns the current time between spawns.
func (g *Game) SpawnInterval() time.Duration { return g.spawner.Interval }

// Missiles returns copies of the live missiles.
func (g *Game) Missiles() []object.Missile {
	out := make([]object.Missile, len(g.missiles))
	for i, m := range g.missiles {
		out[i] = *m
	}
	return out
}

// Explosions returns copies of the active explosions.
func (g *Game) Explosions() []object.Explosion {
	out := make([]object.Explosion, len(g.explosions))
	for i, e := range g.explosions {
		out[i] = *e
	}
	return out
}

// Snapshot copies the state a renderer needs.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Screen:     g.screen,
		Missiles:   g.Missiles(),
		Explosions: g.Explosions(),
		Stars:      append([]object.Star(nil), g.stars...),
		Planet:     g.planet,
		Score:      g.score,
		Health:     g.health,
		Phase:      g.phase,
	}
}

// Render hands a snapshot of the current state to the renderer.
func (g *Game) Render() {
	g.renderer.Render(g.Snapshot())
}

// endGame moves to GameOver. Calling it again has no effect.
func (g *Game) endGame() {
	if g.phase == GameOver {
		return
	}
	g.phase = GameOver
	g.logger.Info("game over", "score", g.score, "time", g.clock.Round(time.Millisecond))
}
