/*
Package pseudosphere embeds a strip of the hyperbolic plane into 3D as
the pseudosphere, the surface of revolution of a tractrix.

Points of the upper half-plane (x, y) with y ≥ 1 enter the embedding as
plane coordinates (v, u) = (x, acosh y). The surface is

	radius(u) = sech u
	z(u)      = u − tanh u
	point     = (radius·cos v, radius·sin v, z)

The embedding covers u ≥ 0 (y ≥ 1, z ≥ 0) only. z(u) has no closed-form
inverse; UFromZ finds it by bisection.

The package also contains a tracer which walks geodesics along the
surface step by step. It is an independent check of the geodesics found by
straight lines in the Klein disk, not the primary way to construct them.
*/
package pseudosphere

import (
	"fmt"
	"math"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/bisect"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.pseudosphere'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.pseudosphere")
}

// MaxU is the upper end of the interval UFromZ searches.
const MaxU = 1e6

// profileSearch is the bisection used to invert z(u).
var profileSearch = bisect.Bisection{Tolerance: 1e-6, MaxIterations: 200}

// ToInput converts a point (x, y) of the upper half-plane to plane
// coordinates (v, u) = (x, acosh y). y < 1 is outside the embedding.
func ToInput(p hyperbolic.Point) (hyperbolic.Point, error) {
	if !(p.Y >= 1) {
		return p, fmt.Errorf("%w: %s below the rim of the pseudosphere", hyperbolic.ErrDomain, p)
	}
	return hyperbolic.P(p.X, math.Acosh(p.Y)), nil
}

// FromInput converts plane coordinates (v, u) back to the upper half-plane.
func FromInput(p hyperbolic.Point) hyperbolic.Point {
	return hyperbolic.P(p.X, math.Cosh(p.Y))
}

// RadiusFromU is the distance of the surface from the z-axis, sech u.
func RadiusFromU(u float64) float64 {
	return 1 / math.Cosh(u)
}

// ZFromU is the height of the surface, u − tanh u.
func ZFromU(u float64) float64 {
	return u - math.Tanh(u)
}

// UFromZ inverts ZFromU on [0, MaxU]. Heights outside of the range of z(u)
// return the nearest bound together with hyperbolic.ErrNonConvergence.
func UFromZ(z float64) (float64, error) {
	return profileSearch.Solve(ZFromU, z, 0, MaxU)
}

// Embed maps a point of the upper half-plane onto the pseudosphere.
func Embed(p hyperbolic.Point) (hyperbolic.Point, error) {
	in, err := ToInput(p)
	if err != nil {
		return p, err
	}
	v, u := in.X, in.Y
	r := RadiusFromU(u)
	return hyperbolic.P3(r*math.Cos(v), r*math.Sin(v), ZFromU(u)), nil
}

// Normal returns the unit surface normal at the embedding of upper
// half-plane point p.
//
// In the xz-plane the profile has dr/du = −tanh u·sech u and
// dz/du = 1 − sech² u = tanh² u, so dz/dr = −sinh u and the normal is
// (−dz/dr, 0, 1). Using the reduced form keeps the normal defined at the
// rim, where both derivatives vanish.
func Normal(p hyperbolic.Point) (hyperbolic.Point, error) {
	in, err := ToInput(p)
	if err != nil {
		return p, err
	}
	v, u := in.X, in.Y
	n := hyperbolic.P3(math.Sinh(u), 0, 1).Normalized()
	return n.RotatedXY(v), nil
}

// Transform returns the embedding as a forward-only transform. Mapping
// back from 3D would need a camera ray intersected with the surface.
func Transform() transform.Transform {
	return transform.ForwardOnly("pseudosphere", Embed)
}
