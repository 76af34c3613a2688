// Package draw renders simulation shapes to ANSI terminals.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ArcPoints appends n+1 points along the arc of the circle centred at
// (cx, cy) from angle start to end (radians, y axis pointing down) to dst.
func ArcPoints(dst []Point, cx, cy, radius, start, end float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	step := (end - start) / float64(n)
	for i := 0; i <= n; i++ {
		a := start + step*float64(i)
		dst = append(dst, Point{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius})
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
