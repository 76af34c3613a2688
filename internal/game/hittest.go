package game

import (
	"fmt"
	"strings"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/physics"
)

// HitTester selects the missile a pointer event at (x, y) destroys.
// It returns an index into missiles, or -1 only when missiles is empty.
type HitTester interface {
	Select(missiles []*object.Missile, x, y float64) int
}

// RadialHitTest hits a missile when the pointer is within its radius scaled
// by Enlargement. The first match in slice order wins.
type RadialHitTest struct {
	Enlargement float64
}

// Select implements HitTester.
func (h RadialHitTest) Select(missiles []*object.Missile, x, y float64) int {
	enlargement := h.Enlargement
	if enlargement <= 0 {
		enlargement = config.HitEnlargement
	}
	for i, m := range missiles {
		if physics.PointInCircle(x, y, m.X, m.Y, m.Radius*enlargement) {
			return i
		}
	}
	return nearestImpact(missiles)
}

// ShapeHitTest hits a missile when the pointer lies inside its drawn
// silhouette.
type ShapeHitTest struct{}

// Select implements HitTester.
func (ShapeHitTest) Select(missiles []*object.Missile, x, y float64) int {
	for i, m := range missiles {
		if m.Contains(x, y) {
			return i
		}
	}
	return nearestImpact(missiles)
}

// nearestImpact returns the index of the missile with the largest y, the
// first one on ties, or -1 for an empty slice.
func nearestImpact(missiles []*object.Missile) int {
	best := -1
	for i, m := range missiles {
		if best < 0 || m.Y > missiles[best].Y {
			best = i
		}
	}
	return best
}

// ParseHitTest returns the hit tester named by name: "radial" (or empty)
// or "shape".
func ParseHitTest(name string) (HitTester, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "radial":
		return RadialHitTest{Enlargement: config.HitEnlargement}, nil
	case "shape":
		return ShapeHitTest{}, nil
	}
	return nil, fmt.Errorf("unknown hit test %q", name)
}
