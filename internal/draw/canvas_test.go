package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func countSet(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

func TestTerminalToLogicalCellCentres(t *testing.T) {
	// One terminal cell is 4 logical units wide and 8 tall.
	c := NewScaledCanvas(80, 24, 320, 192)

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{1, 1, 2, 4},
		{41, 13, 162, 100},
		{80, 24, 318, 188},
	}
	for _, tt := range tests {
		x, y, ok := c.TerminalToLogical(tt.col, tt.row)
		if !ok {
			t.Fatalf("TerminalToLogical(%d, %d) reported outside canvas", tt.col, tt.row)
		}
		if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
			t.Errorf("TerminalToLogical(%d, %d) = (%.1f, %.1f), want (%.1f, %.1f)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestTerminalToLogicalOffsetAndBounds(t *testing.T) {
	c := NewScaledCanvas(10, 5, 40, 40)
	c.SetOffset(3, 2)

	tests := []struct {
		col, row int
		ok       bool
	}{
		{3, 3, false},  // left of canvas
		{4, 2, false},  // above canvas
		{4, 3, true},   // first cell
		{13, 7, true},  // last cell
		{14, 7, false}, // right of canvas
		{13, 8, false}, // below canvas
	}

	for _, tt := range tests {
		_, _, ok := c.TerminalToLogical(tt.col, tt.row)
		if ok != tt.ok {
			t.Errorf("TerminalToLogical(%d, %d) ok = %v, want %v", tt.col, tt.row, ok, tt.ok)
		}
	}

	x, y, _ := c.TerminalToLogical(4, 3)
	if x != 2 || y != 4 {
		t.Errorf("first cell centre = (%v, %v), want (2, 4)", x, y)
	}
}

func TestFillCircleAndDither(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)

	c.FillCircle(20, 20, 8)
	full := countSet(c)
	if full == 0 {
		t.Fatal("FillCircle set no pixels")
	}

	c.Clear()
	c.DitherCircle(20, 20, 8, 0.5)
	half := countSet(c)
	if half == 0 || half >= full {
		t.Errorf("half-density dither set %d pixels, full disc %d", half, full)
	}

	c.Clear()
	c.DitherCircle(20, 20, 8, 0)
	if n := countSet(c); n != 0 {
		t.Errorf("zero-density dither set %d pixels", n)
	}
}

func TestFillCircleClipsOutsideCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	// Mostly off-canvas circle must not panic.
	c.FillCircle(-5, 12, 20)
	c.FillCircle(1000, 1000, 5)
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetFloat(0, 0) // top of column 1
	c.SetFloat(1, 0) // top of column 2
	c.SetFloat(1, 1) // bottom of column 2

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "\033[1;1H"+string(BlockUpperHalf)) {
		t.Errorf("expected upper half block in column 1, got %q", out)
	}
	if !strings.Contains(out, "\033[1;2H"+string(BlockFull)) {
		t.Errorf("expected full block in column 2, got %q", out)
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{2, 2}, {18, 2}, {18, 18}, {2, 18}}, true)
	if !c.pixel(10, 10) {
		t.Error("filled square should cover its centre")
	}
	if c.pixel(0, 0) {
		t.Error("pixel outside the square should stay clear")
	}
}

func TestBorrowPointsReusesBuffer(t *testing.T) {
	c := NewScaledCanvas(10, 5, 40, 40)
	a := c.BorrowPoints(8)
	if len(a) != 8 {
		t.Fatalf("len = %d, want 8", len(a))
	}
	b := c.BorrowPoints(4)
	if &a[0] != &b[0] {
		t.Error("smaller borrow allocated a new buffer")
	}
	if got := c.BorrowPoints(16); cap(got) < 16 {
		t.Errorf("cap = %d, want at least 16", cap(got))
	}
}
