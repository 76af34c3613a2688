package object

import (
	"time"

	"github.com/tomz197/missiles/internal/config"
)

// Explosion is a timed visual effect marking a destroyed missile. It grows
// from nothing to MaxRadius while fading out, and has no gameplay effect.
type Explosion struct {
	X, Y      float64 // Fixed centre
	Radius    float64
	MaxRadius float64
	Alpha     float64
	Elapsed   time.Duration
	Duration  time.Duration
}

// NewExplosion creates an explosion at (x, y) sized from the destroyed
// missile's radius. A non-positive baseRadius uses the default size.
func NewExplosion(x, y, baseRadius float64) *Explosion {
	if baseRadius <= 0 {
		baseRadius = config.ExplosionDefaultBaseRad
	}
	return &Explosion{
		X:         x,
		Y:         y,
		MaxRadius: baseRadius * config.ExplosionRadiusFactor,
		Alpha:     1,
		Duration:  config.ExplosionDuration,
	}
}

// Progress returns how far through its lifetime the explosion is, in [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return min(float64(e.Elapsed)/float64(e.Duration), 1)
}

// Update advances the animation. Returns true once the explosion has run
// its full duration and should be removed.
func (e *Explosion) Update(dt time.Duration) (done bool) {
	if dt > 0 {
		e.Elapsed += dt
	}
	progress := e.Progress()
	e.Radius = e.MaxRadius * progress
	e.Alpha = 1 - progress
	return progress >= 1
}

// CoreRadius returns the radius of the bright centre of the explosion.
func (e *Explosion) CoreRadius() float64 {
	return e.Radius * config.ExplosionCoreFactor
}
