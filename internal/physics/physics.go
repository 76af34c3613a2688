// Package physics provides hit-testing and distance utilities.
package physics

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
// Points exactly on the circle count as inside.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// PointInRect checks if a point lies inside the axis-aligned rectangle with
// top-left corner (x, y) and the given size. Edges are inclusive.
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}

// PointInTriangle checks if a point lies inside the triangle (a, b, c),
// edges included. Works for either winding order. Degenerate triangles
// contain nothing.
func PointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := cross(px, py, ax, ay, bx, by)
	d2 := cross(px, py, bx, by, cx, cy)
	d3 := cross(px, py, cx, cy, ax, ay)

	if cross(ax, ay, bx, by, cx, cy) == 0 {
		return false
	}

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// cross returns the z component of (b-a) x (p-a), i.e. which side of the
// line a→b the point p is on.
func cross(px, py, ax, ay, bx, by float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
