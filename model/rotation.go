package model

import "fmt"

// Rotation represents a page display rotation as a number of clockwise
// quarter turns. Only the four enumerated values exist; arithmetic on
// rotations is always taken modulo four turns.
//
// Using a dedicated type instead of a raw degree count keeps illegal
// rotation values out of the API: every function in this package treats
// its Rotation arguments as total over the four variants.
type Rotation int

const (
	Rotate0   Rotation = 0 // no rotation
	Rotate90  Rotation = 1 // 90 degrees clockwise
	Rotate180 Rotation = 2 // 180 degrees
	Rotate270 Rotation = 3 // 270 degrees clockwise
)

// RotationFromDegrees converts a degree value (as stored, for example, in a
// PDF page /Rotate entry) to a Rotation. Negative multiples of 90 are
// accepted and normalized.
func RotationFromDegrees(deg int) (Rotation, error) {
	if deg%90 != 0 {
		return Rotate0, fmt.Errorf("rotation %d is not a multiple of 90 degrees", deg)
	}
	return Rotation(((deg/90)%4+4)%4), nil
}

// Degrees returns the rotation as clockwise degrees (0, 90, 180 or 270).
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// IsQuarterTurn returns true for the sideways rotations (90 and 270 degrees),
// the ones that swap a page's apparent width and height.
func (r Rotation) IsQuarterTurn() bool {
	return r == Rotate90 || r == Rotate270
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation((4 - int(r)) % 4)
}

// String returns the rotation in degrees, e.g. "90°".
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// TranslateSize returns the page dimensions as they appear under the given
// rotation: a quarter turn swaps width and height, the other rotations leave
// the size unchanged.
func TranslateSize(sz Size, r Rotation) Size {
	if r.IsQuarterTurn() {
		return Size{Width: sz.Height, Height: sz.Width}
	}
	return sz
}

// DiffRotation returns the additional rotation that, applied after old,
// yields new. The result is always one of the four canonical values, even
// when the raw difference is negative.
func DiffRotation(old, new Rotation) Rotation {
	return Rotation(((int(new)-int(old))%4+4)%4)
}

// RotatePoint rotates a point clockwise within a page of the given unrotated
// size. The point is expressed in the bottom-left-origin frame of the
// unrotated page; the result is in the frame of the rotated page.
//
// Rotate0 is an exact identity: degenerate inputs pass through untouched
// rather than round-tripping through the rotation arithmetic.
func RotatePoint(p Point, pageSize Size, r Rotation) Point {
	if r == Rotate0 {
		return p
	}

	minusX := pageSize.Width - p.X
	minusY := pageSize.Height - p.Y

	switch r {
	case Rotate90:
		return Point{X: p.Y, Y: minusX}
	case Rotate180:
		return Point{X: minusX, Y: minusY}
	default: // Rotate270
		return Point{X: minusY, Y: p.X}
	}
}

// RotateBBox rotates a bounding box clockwise within a page of the given
// unrotated size. The box's two opposite corners are rotated independently
// and the result is rebuilt from the rotated pair, since rotation does not
// preserve which corner is the bottom-left one.
func RotateBBox(b BBox, pageSize Size, r Rotation) BBox {
	if r == Rotate0 {
		return b
	}

	p1 := RotatePoint(b.BottomLeft(), pageSize, r)
	p2 := RotatePoint(b.TopRight(), pageSize, r)
	return NewBBoxFromPoints(p1, p2)
}
