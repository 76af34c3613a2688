package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/physics"
)

// Missile is a falling projectile the player must intercept.
type Missile struct {
	X, Y   float64 // Centre position; y grows downward, negative above the viewport
	Radius float64 // Size and hit area
	Speed  float64 // Pixels per second, fixed at creation
}

// NewMissile creates a missile just above the top of the screen. The x
// position keeps the whole missile width (2×radius) on screen; speed grows
// with the score at spawn time.
func NewMissile(screen Screen, score int, rng *rand.Rand) *Missile {
	radius := config.MissileMinRadius + rng.Float64()*config.MissileRadiusRange

	span := float64(screen.Width) - radius*2
	x := radius + rng.Float64()*max(span, 0)
	if span < 0 {
		x = float64(screen.Width) / 2
	}

	speed := config.MissileMinSpeed + rng.Float64()*config.MissileSpeedRange +
		float64(score)*config.MissileSpeedPerScore

	return &Missile{
		X:      x,
		Y:      -radius,
		Radius: radius,
		Speed:  speed,
	}
}

// Update advances the missile by dt and reports whether it is now fully
// below the ground line.
func (m *Missile) Update(dt time.Duration, ground float64) (impacted bool) {
	m.Y += m.Speed * dt.Seconds()
	return m.Y-m.Radius > ground
}

// Silhouette is the rendered missile outline: a body rectangle, a nose
// triangle above it and two fins below its bottom corners.
type Silhouette struct {
	Body     [4]draw.Point
	Nose     [3]draw.Point
	LeftFin  [3]draw.Point
	RightFin [3]draw.Point
}

// Polygons returns the silhouette parts as polygons for drawing.
func (s *Silhouette) Polygons() [][]draw.Point {
	return [][]draw.Point{s.Body[:], s.Nose[:], s.LeftFin[:], s.RightFin[:]}
}

// missileDims returns the silhouette measurements for a radius.
func missileDims(radius float64) (bodyW, bodyH, finW, finH float64) {
	bodyW = radius * 0.4
	bodyH = radius * 1.6
	finW = bodyW * 0.8
	finH = bodyH * 0.3
	return
}

// Silhouette returns the missile's outline in world coordinates.
func (m *Missile) Silhouette() Silhouette {
	bw, bh, fw, fh := missileDims(m.Radius)
	hw, hh := bw/2, bh/2
	at := func(x, y float64) draw.Point {
		return draw.Point{X: m.X + x, Y: m.Y + y}
	}

	return Silhouette{
		Body:     [4]draw.Point{at(-hw, -hh), at(hw, -hh), at(hw, hh), at(-hw, hh)},
		Nose:     [3]draw.Point{at(-hw, -hh), at(hw, -hh), at(0, -bh)},
		LeftFin:  [3]draw.Point{at(-hw, hh), at(-hw-fw, hh+fh), at(-hw, hh+fh)},
		RightFin: [3]draw.Point{at(hw, hh), at(hw+fw, hh+fh), at(hw, hh+fh)},
	}
}

// Contains reports whether (px, py) lies inside the missile silhouette.
// The point is translated into missile-local space and tested against each part.
func (m *Missile) Contains(px, py float64) bool {
	bw, bh, fw, fh := missileDims(m.Radius)
	hw, hh := bw/2, bh/2
	x, y := px-m.X, py-m.Y

	switch {
	case physics.PointInRect(x, y, -hw, -hh, bw, bh):
		return true
	case physics.PointInTriangle(x, y, -hw, -hh, hw, -hh, 0, -bh):
		return true
	case physics.PointInTriangle(x, y, -hw, hh, -hw-fw, hh+fh, -hw, hh+fh):
		return true
	case physics.PointInTriangle(x, y, hw, hh, hw+fw, hh+fh, hw, hh+fh):
		return true
	}
	return false
}
