package model

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix [a b c d e f],
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Inverse returns the inverse transformation. It fails if the matrix is
// singular (zero determinant), which cannot happen for matrices composed
// from non-zero scales, quarter rotations, and translations.
func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, fmt.Errorf("matrix %v is singular", m)
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// QuarterRotation creates the exact rotation matrix for a quarter-turn
// rotation. Entries are exact -1/0/1 values, so points on a page edge stay
// exactly on the edge after transformation.
func QuarterRotation(r Rotation) Matrix {
	switch r {
	case Rotate90:
		// clockwise quarter turn
		return Matrix{0, -1, 1, 0, 0, 0}
	case Rotate180:
		return Matrix{-1, 0, 0, -1, 0, 0}
	case Rotate270:
		return Matrix{0, 1, -1, 0, 0, 0}
	default:
		return Identity()
	}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
