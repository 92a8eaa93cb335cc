package hyperbolic

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// === Point Data Type =======================================================

// Point is a 2D or 3D coordinate. 2D points have Z = 0.
//
// Points are values: all operations return new points. 3D vector arithmetic
// is done with mgl64.Vec3, the 2D conformal maps use complex numbers.
type Point struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a 2D point from floats.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// P3 is a quick notation for contructing a 3D point from floats.
func P3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// V2P returns a point from a mathgl vector.
func V2P(v mgl64.Vec3) Point {
	return Point{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec returns a point as a mathgl vector.
func (p Point) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// C returns the x- and y-part of a point as a complex number.
func (p Point) C() complex128 {
	return complex(p.X, p.Y)
}

// C2P returns a 2D point from a complex number.
func C2P(c complex128) Point {
	return P(real(c), imag(c))
}

// Pretty Stringer for points. 2D points omit the z-part.
func (p Point) String() string {
	if p.Z == 0 {
		return fmt.Sprintf("(%g,%g)", p.X, p.Y)
	}
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// XY drops the z-part of a point.
func (p Point) XY() Point {
	return P(p.X, p.Y)
}

// Zap rounds each part of a point to Epsilon.
func (p Point) Zap() Point {
	return P3(Zap(p.X), Zap(p.Y), Zap(p.Z))
}

// IsOrigin is a predicate: is this point origin?
func (p Point) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsFinite is a predicate: are all parts of p finite numbers?
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y) && IsFinite(p.Z)
}

// Equal compares two points within Epsilon.
func (p Point) Equal(q Point) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return V2P(p.Vec().Add(q.Vec()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return V2P(p.Vec().Sub(q.Vec()))
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return V2P(p.Vec().Mul(a))
}

// Dot is the scalar product p·q.
func (p Point) Dot(q Point) float64 {
	return p.Vec().Dot(q.Vec())
}

// Cross is the vector product p × q.
func (p Point) Cross(q Point) Point {
	return V2P(p.Vec().Cross(q.Vec()))
}

// Len is the euclidean length of p.
func (p Point) Len() float64 {
	return p.Vec().Len()
}

// Dist is the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Normalized returns p scaled to unit length. The zero vector is returned
// unchanged.
func (p Point) Normalized() Point {
	if p.Len() == 0 {
		return p
	}
	return V2P(p.Vec().Normalize())
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
// Both ends are reproduced exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Scaled(1 - t).Add(q.Scaled(t))
}

// RotatedXY returns p rotated around the z-axis by theta (counterclockwise).
func (p Point) RotatedXY(theta float64) Point {
	return V2P(mgl64.Rotate3DZ(theta).Mul3x1(p.Vec()))
}

// RotatedAround returns p rotated by theta around the axis through pivot
// with direction axis. The axis need not be normalized, but must not be 0.
func (p Point) RotatedAround(pivot, axis Point, theta float64) Point {
	q := mgl64.QuatRotate(theta, axis.Vec().Normalize())
	return V2P(q.Rotate(p.Sub(pivot).Vec()).Add(pivot.Vec()))
}

// RadiusXY is the distance of p from the z-axis.
func (p Point) RadiusXY() float64 {
	return math.Hypot(p.X, p.Y)
}

// SignedAngleXY is the angle by which the projection of a onto the xy-plane
// has to be rotated around the z-axis to point towards the projection of b.
// The result is in -π … π.
func SignedAngleXY(a, b Point) float64 {
	cross := a.X*b.Y - a.Y*b.X
	dot := a.X*b.X + a.Y*b.Y
	return math.Atan2(cross, dot)
}
