package window

import "testing"

func TestToSim(t *testing.T) {
	tests := []struct {
		px, py int
		scale  float64
		x, y   float64
	}{
		{100, 200, 1, 100, 200},
		{100, 200, 2, 50, 100},
		{30, 45, 1.5, 20, 30},
		{10, 10, 0, 10, 10},
	}
	for _, tt := range tests {
		x, y := toSim(tt.px, tt.py, tt.scale)
		if x != tt.x || y != tt.y {
			t.Errorf("toSim(%d, %d, %v) = (%v, %v), want (%v, %v)", tt.px, tt.py, tt.scale, x, y, tt.x, tt.y)
		}
	}
}

func TestRestartButton(t *testing.T) {
	b := restartButton(480, 720)
	if !b.Contains(240, 380+18) {
		t.Error("button centre not contained")
	}
	if b.Contains(240, 360) || b.Contains(100, 400) {
		t.Error("point outside button contained")
	}

	r := b.scaled(2)
	if r.Min.X != 340 || r.Min.Y != 760 || r.Dx() != 280 || r.Dy() != 72 {
		t.Errorf("scaled button = %v", r)
	}
}
