package hyperbolic

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming 2D points.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 2, p.X)
	m.set(1, 2, p.Y)
	return m
}

// Scaling transform. Scale x by sx and y by sy, relative to the origin.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Inverse returns the inverse transformation. Singular matrices are in
// ErrDomain. Small but non-zero determinants, e.g. of strong scalings, are
// fine as long as the inverse is finite.
func (m AT) Inverse() (AT, error) {
	a, b, c := m.get(0, 0), m.get(0, 1), m.get(0, 2)
	d, e, f := m.get(1, 0), m.get(1, 1), m.get(1, 2)
	det := a*e - b*d
	if det == 0 || !IsFinite(1/det) {
		return nil, fmt.Errorf("%w: singular affine transform %s", ErrDomain, m)
	}
	o := newAT()
	o.set(0, 0, e/det)
	o.set(0, 1, -b/det)
	o.set(1, 0, -d/det)
	o.set(1, 1, a/det)
	o.set(0, 2, (b*f-c*e)/det)
	o.set(1, 2, (c*d-a*f)/det)
	o.set(2, 2, 1.0)
	return o, nil
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a point. The argument is unchanged and a new point is returned.
// The z-part is carried over untouched.
func (m AT) Transform(p Point) Point {
	c := m.multiplyVector([]float64{p.X, p.Y, 1.0})
	return P3(c[0], c[1], p.Z)
}
