package model

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func bboxEquals(a, b BBox) bool {
	return floatEquals(a.X, b.X) && floatEquals(a.Y, b.Y) &&
		floatEquals(a.Width, b.Width) && floatEquals(a.Height, b.Height)
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBox(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)
	if bbox.X != 10 || bbox.Y != 20 || bbox.Width != 100 || bbox.Height != 50 {
		t.Errorf("NewBBox() = %+v, want {10, 20, 100, 50}", bbox)
	}
}

func TestNewBBoxFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   BBox
	}{
		{"normal", Point{10, 20}, Point{50, 70}, BBox{10, 20, 40, 50}},
		{"reversed", Point{50, 70}, Point{10, 20}, BBox{10, 20, 40, 50}},
		{"crossed", Point{10, 70}, Point{50, 20}, BBox{10, 20, 40, 50}},
		{"same point", Point{10, 10}, Point{10, 10}, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("Left() = %v, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right() = %v, want 110", b.Right())
	}
	if b.Bottom() != 20 {
		t.Errorf("Bottom() = %v, want 20", b.Bottom())
	}
	if b.Top() != 70 {
		t.Errorf("Top() = %v, want 70", b.Top())
	}
	if b.BottomLeft() != (Point{10, 20}) {
		t.Errorf("BottomLeft() = %+v, want {10, 20}", b.BottomLeft())
	}
	if b.TopRight() != (Point{110, 70}) {
		t.Errorf("TopRight() = %+v, want {110, 70}", b.TopRight())
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(10, 10, 40, 40)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{30, 30}, true},
		{"corner", Point{10, 10}, true},
		{"edge", Point{50, 30}, true},
		{"outside left", Point{5, 30}, false},
		{"outside above", Point{30, 55}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBBoxIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want BBox
	}{
		{"overlap", NewBBox(0, 0, 50, 50), NewBBox(25, 25, 50, 50), NewBBox(25, 25, 25, 25)},
		{"contained", NewBBox(0, 0, 100, 100), NewBBox(20, 20, 10, 10), NewBBox(20, 20, 10, 10)},
		{"disjoint", NewBBox(0, 0, 10, 10), NewBBox(50, 50, 10, 10), BBox{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if !bboxEquals(got, tt.want) {
				t.Errorf("Intersection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxExpand(t *testing.T) {
	b := NewBBox(10, 10, 20, 20).Expand(5)
	want := NewBBox(5, 5, 30, 30)
	if !bboxEquals(b, want) {
		t.Errorf("Expand(5) = %+v, want %+v", b, want)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if NewBBox(0, 0, 10, 10).IsEmpty() {
		t.Error("non-empty box reported empty")
	}
	if !NewBBox(5, 5, 0, 10).IsEmpty() {
		t.Error("zero-width box not reported empty")
	}
}

// ============================================================================
// Matrix Tests
// ============================================================================

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not identity")
	}

	p := Point{13, 37}
	if got := m.Transform(p); got != p {
		t.Errorf("identity Transform(%+v) = %+v", p, got)
	}
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"translate", Translate(10, 20), Point{1, 2}, Point{11, 22}},
		{"scale", Scale(2, 3), Point{5, 5}, Point{10, 15}},
		{"quarter turn", QuarterRotation(Rotate90), Point{1, 0}, Point{0, -1}},
		{"half turn", QuarterRotation(Rotate180), Point{3, 4}, Point{-3, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(tt.p)
			if !floatEquals(got.X, tt.want.X) || !floatEquals(got.Y, tt.want.Y) {
				t.Errorf("Transform(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiply(t *testing.T) {
	// scale then translate: the scale applies to the point first
	m := Scale(2, 2).Multiply(Translate(10, 10))
	got := m.Transform(Point{5, 5})
	want := Point{20, 20}
	if !floatEquals(got.X, want.X) || !floatEquals(got.Y, want.Y) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := QuarterRotation(Rotate90).Multiply(Scale(2, 2)).Multiply(Translate(7, -3))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}

	p := Point{42, 17}
	back := inv.Transform(m.Transform(p))
	if !floatEquals(back.X, p.X) || !floatEquals(back.Y, p.Y) {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	if _, err := Scale(0, 1).Inverse(); err == nil {
		t.Error("expected error for singular matrix")
	}
}

// ============================================================================
// Color Tests
// ============================================================================

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [4]uint8
	}{
		{"opaque red", RGB(1, 0, 0), [4]uint8{255, 0, 0, 255}},
		{"half alpha", RGBA(0, 0, 1, 0.5), [4]uint8{0, 0, 255, 128}},
		{"clamped", RGBA(2, -1, 0.5, 1.5), [4]uint8{255, 0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.NRGBA()
			if got.R != tt.want[0] || got.G != tt.want[1] || got.B != tt.want[2] || got.A != tt.want[3] {
				t.Errorf("NRGBA() = %+v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorIsTransparent(t *testing.T) {
	if !(Color{}).IsTransparent() {
		t.Error("zero color should be transparent")
	}
	if RGB(1, 1, 1).IsTransparent() {
		t.Error("opaque color reported transparent")
	}
}
