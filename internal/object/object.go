// Package object defines the simulation entities: missiles, explosions and
// the decorative backdrop.
package object

// Screen represents the viewport dimensions in simulation pixels.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen of the given size. Negative sizes are treated as 0.
func NewScreen(width, height int) Screen {
	width = max(width, 0)
	height = max(height, 0)
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// GroundLevel returns the y coordinate missiles impact at.
func (s Screen) GroundLevel() float64 {
	return float64(s.Height)
}
