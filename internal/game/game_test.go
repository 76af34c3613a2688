package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
)

type hudUpdate struct {
	score, health int
}

// recorder implements every sink and keeps what it was given.
type recorder struct {
	events  []string
	huds    []hudUpdate
	frames  []Snapshot
	impacts int
	onPlay  func()
}

func (r *recorder) Render(s Snapshot) {
	r.events = append(r.events, "render")
	r.frames = append(r.frames, s)
}

func (r *recorder) PlayImpact() {
	r.events = append(r.events, "audio")
	r.impacts++
	if r.onPlay != nil {
		r.onPlay()
	}
}

func (r *recorder) UpdateHUD(score, health int) {
	r.events = append(r.events, "hud")
	r.huds = append(r.huds, hudUpdate{score, health})
}

func (r *recorder) reset() {
	r.events = nil
	r.huds = nil
	r.frames = nil
	r.impacts = 0
}

type panicAudio struct{}

func (panicAudio) PlayImpact() { panic("no audio device") }

func newTestGame(t *testing.T, hit HitTester) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := New(Options{
		Screen:   object.NewScreen(400, 600),
		HitTest:  hit,
		Renderer: rec,
		Audio:    rec,
		HUD:      rec,
		Rand:     rand.New(rand.NewSource(42)),
	})
	rec.reset()
	return g, rec
}

// heldInterval is long enough that no step ever reaches it.
const heldInterval = time.Duration(math.MaxInt64)

// holdSpawns makes the spawner believe it just spawned at the current clock
// and will never spawn again.
func holdSpawns(g *Game) {
	g.spawner.spawned = true
	g.spawner.lastSpawn = g.clock
	g.spawner.Interval = heldInterval
}

func addMissile(g *Game, x, y, radius, speed float64) *object.Missile {
	m := &object.Missile{X: x, Y: y, Radius: radius, Speed: speed}
	g.missiles = append(g.missiles, m)
	return m
}

func TestNewGame(t *testing.T) {
	rec := &recorder{}
	g := New(Options{Screen: object.NewScreen(400, 600), HUD: rec, Rand: rand.New(rand.NewSource(1))})

	if g.Score() != 0 || g.Health() != config.InitialHealth || g.Phase() != Running {
		t.Errorf("new game: score=%d health=%d phase=%v", g.Score(), g.Health(), g.Phase())
	}
	if len(g.Missiles()) != 0 || len(g.Explosions()) != 0 {
		t.Error("new game should have no entities")
	}
	if g.SpawnInterval() != config.InitialSpawnInterval {
		t.Errorf("interval = %v, want %v", g.SpawnInterval(), config.InitialSpawnInterval)
	}
	if len(rec.huds) != 1 || rec.huds[0] != (hudUpdate{0, 5}) {
		t.Errorf("HUD should be told the initial values once, got %v", rec.huds)
	}
}

func TestNewGameNilSinks(t *testing.T) {
	g := New(Options{Screen: object.NewScreen(100, 100)})
	g.Step(0)
	g.HandlePointer(50, 0)
	g.Render()
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
}

func TestFirstStepSpawns(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(0)
	if n := len(g.missiles); n != 1 {
		t.Fatalf("first step spawned %d missiles, want 1", n)
	}
	if g.SpawnInterval() >= config.InitialSpawnInterval {
		t.Errorf("interval %v did not shrink after spawn", g.SpawnInterval())
	}
}

func TestSpawnTiming(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(0)
	interval := g.SpawnInterval()

	// Exactly one interval later is not enough; the gap must exceed it.
	g.Step(interval)
	if n := len(g.missiles); n != 1 {
		t.Fatalf("missiles after one interval = %d, want 1", n)
	}
	g.Step(time.Millisecond)
	if n := len(g.missiles); n != 2 {
		t.Fatalf("missiles after interval+1ms = %d, want 2", n)
	}
}

func TestSpawnIntervalDecay(t *testing.T) {
	cur := config.InitialSpawnInterval
	for i := 0; i < 2000; i++ {
		next := NextInterval(cur)
		want := max(config.MinSpawnInterval, time.Duration(float64(cur)*config.SpawnDecay))
		if next != want {
			t.Fatalf("step %d: NextInterval(%v) = %v, want %v", i, cur, next, want)
		}
		if next > cur {
			t.Fatalf("step %d: interval grew from %v to %v", i, cur, next)
		}
		if next < config.MinSpawnInterval {
			t.Fatalf("step %d: interval %v below floor", i, next)
		}
		cur = next
	}
	if cur != config.MinSpawnInterval {
		t.Errorf("interval should settle on the floor, got %v", cur)
	}
}

func TestSpawnerThroughGame(t *testing.T) {
	g, _ := newTestGame(t, nil)
	prev := g.SpawnInterval()
	for i := 0; i < 5000; i++ {
		g.Step(50 * time.Millisecond)
		g.health = config.InitialHealth // keep the game running
		cur := g.SpawnInterval()
		if cur > prev || cur < config.MinSpawnInterval {
			t.Fatalf("interval went from %v to %v", prev, cur)
		}
		prev = cur
	}
}

func TestSpawnSpeedIncludesScore(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.score = 10
	g.Step(0)
	if len(g.missiles) != 1 {
		t.Fatalf("expected a spawn")
	}
	m := g.missiles[0]
	if m.Speed < 50 || m.Speed >= 80 {
		t.Errorf("speed %f outside [50, 80) at score 10", m.Speed)
	}
	if m.X-m.Radius < 0 || m.X+m.Radius > 400 {
		t.Errorf("missile x=%f r=%f not fully on screen", m.X, m.Radius)
	}
}

func TestKinematics(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	m := addMissile(g, 100, 0, 20, 60)

	g.Step(500 * time.Millisecond)
	if math.Abs(m.Y-30) > 1e-9 {
		t.Errorf("y = %f after 0.5s at 60px/s, want 30", m.Y)
	}
}

func TestGroundImpactOnce(t *testing.T) {
	g, rec := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 600+20+1, 20, 50)
	addMissile(g, 200, 100, 20, 50)

	g.Step(0)
	if g.Health() != 4 {
		t.Errorf("health = %d, want 4", g.Health())
	}
	if len(g.missiles) != 1 || g.missiles[0].X != 200 {
		t.Errorf("the impacted missile should be gone and the other kept, got %v", g.Missiles())
	}
	if len(rec.huds) != 1 || rec.huds[0] != (hudUpdate{0, 4}) {
		t.Errorf("HUD updates = %v, want one (0, 4)", rec.huds)
	}

	g.Step(0)
	if g.Health() != 4 {
		t.Errorf("health changed again to %d", g.Health())
	}
}

func TestImpactBoundary(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 620, 20, 50) // y - r == ground

	g.Step(0)
	if g.Health() != 5 || len(g.missiles) != 1 {
		t.Errorf("missile touching the ground line should not impact")
	}
}

func TestLastHealthEndsGame(t *testing.T) {
	g, rec := newTestGame(t, nil)
	holdSpawns(g)
	g.health = 1
	addMissile(g, 100, 600+20+1, 20, 50)
	addMissile(g, 200, 600+20+1, 20, 50)
	addMissile(g, 300, 100, 20, 50)
	explosion := object.NewExplosion(50, 50, 20)
	g.explosions = append(g.explosions, explosion)

	g.Step(100 * time.Millisecond)

	if g.Health() != 0 {
		t.Errorf("health = %d, want 0", g.Health())
	}
	if !g.Over() {
		t.Fatal("game should be over")
	}
	if len(rec.huds) != 1 {
		t.Errorf("only the first impact should be processed, got HUD updates %v", rec.huds)
	}
	if len(g.missiles) != 2 {
		t.Errorf("missiles after game over = %d, want 2 (unprocessed ones kept)", len(g.missiles))
	}
	if g.missiles[1].Y != 100 {
		t.Errorf("missile after the fatal impact moved to y=%f", g.missiles[1].Y)
	}
	if explosion.Elapsed != 0 {
		t.Error("explosions should not be animated in the frame the game ended")
	}

	// Terminal until reset.
	before := g.Missiles()
	g.Step(time.Second)
	if g.Health() != 0 || len(g.missiles) != len(before) || g.missiles[0].Y != before[0].Y {
		t.Error("step after game over mutated state")
	}
	if g.HandlePointer(200, 600) {
		t.Error("pointer after game over should be ignored")
	}
	if g.Score() != 0 {
		t.Errorf("score changed after game over: %d", g.Score())
	}
}

func TestEndGameIdempotent(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.score = 3
	g.endGame()
	g.score = 4
	g.endGame()
	if g.Phase() != GameOver {
		t.Errorf("phase = %v, want game over", g.Phase())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g, rec := newTestGame(t, nil)
	for i := 0; i < 200 && !g.Over(); i++ {
		g.Step(100 * time.Millisecond)
		if i%7 == 0 {
			g.HandlePointer(0, 0)
		}
	}
	g.health = 1
	holdSpawns(g)
	addMissile(g, 10, 1000, 20, 10)
	g.Step(0)
	if !g.Over() {
		t.Fatal("setup: game should be over")
	}

	rec.reset()
	g.Reset()

	if g.Score() != 0 || g.Health() != config.InitialHealth || g.Phase() != Running {
		t.Errorf("after reset: score=%d health=%d phase=%v", g.Score(), g.Health(), g.Phase())
	}
	if len(g.missiles) != 0 || len(g.explosions) != 0 {
		t.Error("entities survived reset")
	}
	if g.SpawnInterval() != config.InitialSpawnInterval || g.spawner.spawned || g.clock != 0 {
		t.Error("spawner or clock not reset")
	}
	if len(rec.huds) != 1 || rec.huds[0] != (hudUpdate{0, 5}) {
		t.Errorf("HUD after reset = %v", rec.huds)
	}

	// A second reset changes nothing.
	g.Reset()
	if g.Score() != 0 || g.Health() != 5 || len(g.missiles) != 0 || g.SpawnInterval() != config.InitialSpawnInterval {
		t.Error("reset is not idempotent")
	}

	g.Step(0)
	if len(g.missiles) != 1 {
		t.Error("game should spawn immediately after reset")
	}
}

func TestPointerHit(t *testing.T) {
	g, rec := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 100, 20, 50)
	addMissile(g, 300, 200, 20, 50)

	var sawScore, sawExplosions int
	rec.onPlay = func() {
		sawScore = g.Score()
		sawExplosions = len(g.explosions)
	}

	if !g.HandlePointer(110, 105) {
		t.Fatal("hit not registered")
	}
	if g.Score() != 1 || len(g.missiles) != 1 || g.missiles[0].X != 300 {
		t.Errorf("after hit: score=%d missiles=%v", g.Score(), g.Missiles())
	}
	if len(g.explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(g.explosions))
	}
	e := g.explosions[0]
	if e.X != 100 || e.Y != 100 || e.MaxRadius != 60 {
		t.Errorf("explosion = %+v", *e)
	}
	if sawScore != 1 || sawExplosions != 1 {
		t.Errorf("audio fired before score/explosion update: score=%d explosions=%d", sawScore, sawExplosions)
	}
	if rec.impacts != 1 {
		t.Errorf("impact cues = %d, want 1", rec.impacts)
	}
	if len(rec.events) != 2 || rec.events[0] != "audio" || rec.events[1] != "hud" {
		t.Errorf("sink order = %v, want [audio hud]", rec.events)
	}
	if rec.huds[0] != (hudUpdate{1, 5}) {
		t.Errorf("HUD = %v", rec.huds[0])
	}
}

func TestPointerEmptyIsNoop(t *testing.T) {
	for _, hit := range []HitTester{RadialHitTest{Enlargement: 1.3}, ShapeHitTest{}} {
		g, rec := newTestGame(t, hit)
		if g.HandlePointer(100, 100) {
			t.Errorf("%T: pointer on empty field reported a change", hit)
		}
		if g.Score() != 0 || len(g.explosions) != 0 || len(rec.events) != 0 {
			t.Errorf("%T: empty pointer event changed state", hit)
		}
	}
}

func TestPointerFallback(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 100, 20, 50)
	addMissile(g, 200, 300, 20, 50)
	addMissile(g, 300, 200, 20, 50)

	if !g.HandlePointer(0, 590) {
		t.Fatal("fallback should destroy a missile")
	}
	if len(g.missiles) != 2 {
		t.Fatalf("missiles = %d, want 2", len(g.missiles))
	}
	for _, m := range g.missiles {
		if m.Y == 300 {
			t.Error("missile nearest impact should have been taken")
		}
	}
}

func TestAudioFailureIsContained(t *testing.T) {
	g := New(Options{
		Screen: object.NewScreen(400, 600),
		Audio:  panicAudio{},
		Rand:   rand.New(rand.NewSource(7)),
	})
	holdSpawns(g)
	addMissile(g, 100, 100, 20, 50)

	if !g.HandlePointer(100, 100) {
		t.Fatal("hit should still count")
	}
	if g.Score() != 1 || len(g.explosions) != 1 {
		t.Error("audio failure interfered with the hit")
	}
	g.Step(16 * time.Millisecond)
	if g.Over() {
		t.Error("audio failure ended the game")
	}
}

func TestExplosionScenario(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 100, 20, 50)
	g.HandlePointer(100, 100)

	g.Step(400 * time.Millisecond)
	e := g.Explosions()[0]
	if e.Duration != 800*time.Millisecond || e.MaxRadius != 60 {
		t.Errorf("explosion = %+v", e)
	}
	if math.Abs(e.Radius-30) > 1e-6 || math.Abs(e.Alpha-0.5) > 1e-6 {
		t.Errorf("at 400ms radius=%f alpha=%f, want 30 and 0.5", e.Radius, e.Alpha)
	}

	g.Step(400 * time.Millisecond)
	if n := len(g.explosions); n != 0 {
		t.Errorf("explosions after 800ms = %d, want 0", n)
	}
}

func TestExplosionsDoNotAffectGameplay(t *testing.T) {
	g, rec := newTestGame(t, nil)
	holdSpawns(g)
	for i := 0; i < 5; i++ {
		g.explosions = append(g.explosions, object.NewExplosion(float64(i*50), 590, 20))
	}
	g.Step(200 * time.Millisecond)
	if g.Score() != 0 || g.Health() != 5 || len(rec.huds) != 0 {
		t.Error("explosions changed score or health")
	}
}

func TestLargeDelta(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 0, 20, 50)
	addMissile(g, 200, 0, 20, 50)

	g.Step(24 * time.Hour)

	if g.Health() != 3 || len(g.missiles) != 0 {
		t.Errorf("after a huge step health=%d missiles=%d, want 3 and 0", g.Health(), len(g.missiles))
	}
	if g.Over() {
		t.Error("two impacts should not end a game with 5 health")
	}
}

func TestResizeMovesGround(t *testing.T) {
	g, _ := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 500, 20, 50)

	g.Step(0)
	if g.Health() != 5 {
		t.Fatal("missile should still be above the ground")
	}

	g.Resize(400, 400)
	g.Step(0)
	if g.Health() != 4 || len(g.missiles) != 0 {
		t.Errorf("after shrinking the viewport health=%d missiles=%d", g.Health(), len(g.missiles))
	}
	if g.Screen().Height != 400 {
		t.Errorf("screen height = %d", g.Screen().Height)
	}

	// Resizing does not touch timing.
	if g.SpawnInterval() != heldInterval {
		t.Error("resize changed the spawn interval")
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g, _ := newTestGame(t, ShapeHitTest{})
	rng := rand.New(rand.NewSource(99))

	for frame := 0; frame < 20000; frame++ {
		g.Step(time.Duration(rng.Intn(100)) * time.Millisecond)
		if rng.Intn(40) == 0 {
			g.HandlePointer(rng.Float64()*400, rng.Float64()*600)
		}
		if g.Health() < 0 || g.Health() > config.InitialHealth || g.Score() < 0 {
			t.Fatalf("frame %d: health=%d score=%d", frame, g.Health(), g.Score())
		}
		if g.Over() {
			if g.Health() != 0 {
				t.Fatalf("game over with health %d", g.Health())
			}
			g.Reset()
		}
	}
}

func TestRenderSnapshotIsCopy(t *testing.T) {
	g, rec := newTestGame(t, nil)
	holdSpawns(g)
	addMissile(g, 100, 100, 20, 50)
	g.HandlePointer(100, 100)
	addMissile(g, 200, 200, 20, 50)

	g.Render()
	if len(rec.frames) != 1 {
		t.Fatalf("frames = %d", len(rec.frames))
	}
	snap := rec.frames[0]
	if len(snap.Missiles) != 1 || len(snap.Explosions) != 1 || len(snap.Stars) != config.StarCount {
		t.Fatalf("snapshot = %d missiles, %d explosions, %d stars", len(snap.Missiles), len(snap.Explosions), len(snap.Stars))
	}
	if snap.Score != 1 || snap.Health != 5 || snap.Phase != Running {
		t.Errorf("snapshot header = %d/%d/%v", snap.Score, snap.Health, snap.Phase)
	}

	snap.Missiles[0].Y = 9999
	snap.Explosions[0].Radius = 9999
	if g.missiles[0].Y == 9999 || g.explosions[0].Radius == 9999 {
		t.Error("snapshot shares memory with the game")
	}
}

func TestParseHitTest(t *testing.T) {
	tests := []struct {
		name    string
		want    HitTester
		wantErr bool
	}{
		{"", RadialHitTest{Enlargement: config.HitEnlargement}, false},
		{"radial", RadialHitTest{Enlargement: config.HitEnlargement}, false},
		{" Shape ", ShapeHitTest{}, false},
		{"pixel", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseHitTest(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHitTest(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHitTest(%q) = %#v, want %#v", tt.name, got, tt.want)
		}
	}
}
