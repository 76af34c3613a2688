package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
)

// Star is a backdrop star. X and Y are fractions of the screen size so the
// field scales with the viewport.
type Star struct {
	X, Y       float64
	Brightness float64 // 0.5 to 1
	Size       float64 // 0.5 to 2 pixels
}

// NewStarField generates count randomly placed stars.
func NewStarField(count int, rng *rand.Rand) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:          rng.Float64(),
			Y:          rng.Float64(),
			Brightness: 0.5 + rng.Float64()*0.5,
			Size:       0.5 + rng.Float64()*1.5,
		}
	}
	return stars
}

// Position returns the star's position on the given screen.
func (s Star) Position(screen Screen) (x, y float64) {
	return s.X * float64(screen.Width), s.Y * float64(screen.Height)
}

// continents are planet-relative outlines measured from the top of the
// planet, in units of its radius, in screen orientation (y down).
var continents = [][]draw.Point{
	{{X: -0.3, Y: -0.15}, {X: -0.1, Y: 0.1}, {X: 0.05, Y: 0}, {X: -0.05, Y: -0.25}, {X: -0.25, Y: -0.3}},
	{{X: 0.05, Y: 0.05}, {X: 0.25, Y: 0.2}, {X: 0.35, Y: 0.15}, {X: 0.3, Y: -0.05}, {X: 0.1, Y: -0.1}, {X: 0, Y: -0.05}},
}

// Planet is the defended body: a disc whose centre sits below the bottom
// edge so only its upper cap shows.
type Planet struct {
	CenterX, CenterY float64
	Radius           float64
	Continents       [][]draw.Point // World coordinates
}

// PlanetFor lays the planet out for a screen.
func PlanetFor(screen Screen) Planet {
	w, h := float64(screen.Width), float64(screen.Height)
	radius := math.Min(w, h) * config.PlanetRadiusRatio
	p := Planet{
		CenterX: w / 2,
		CenterY: h + radius*0.5,
		Radius:  radius,
	}

	top := p.CenterY - radius
	p.Continents = make([][]draw.Point, len(continents))
	for i, shape := range continents {
		pts := make([]draw.Point, len(shape))
		for j, pt := range shape {
			pts[j] = draw.Point{X: p.CenterX + pt.X*radius, Y: top + pt.Y*radius}
		}
		p.Continents[i] = pts
	}
	return p
}

// Outline appends segments+1 points along the upper half of the planet's
// rim to dst.
func (p Planet) Outline(dst []draw.Point, segments int) []draw.Point {
	return draw.ArcPoints(dst, p.CenterX, p.CenterY, p.Radius, math.Pi, 2*math.Pi, segments)
}
