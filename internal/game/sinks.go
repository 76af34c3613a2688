package game

import "github.com/tomz197/missiles/internal/object"

// Renderer draws a frame from a read-only snapshot of the simulation.
type Renderer interface {
	Render(Snapshot)
}

// Audio plays the impact cue. Implementations must not block and must
// swallow their own failures.
type Audio interface {
	PlayImpact()
}

// HUD receives the score and health whenever either changes.
type HUD interface {
	UpdateHUD(score, health int)
}

// Snapshot is a copy of everything a renderer needs for one frame.
// Mutating it has no effect on the game.
type Snapshot struct {
	Screen     object.Screen
	Missiles   []object.Missile
	Explosions []object.Explosion
	Stars      []object.Star
	Planet     object.Planet
	Score      int
	Health     int
	Phase      Phase
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

type nopAudio struct{}

func (nopAudio) PlayImpact() {}

type nopHUD struct{}

func (nopHUD) UpdateHUD(int, int) {}
