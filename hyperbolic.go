/*
Package hyperbolic implements points, circles, rectangles and affine
transformations for drawing linked models of the hyperbolic plane:
the upper half-plane, the Poincaré disk, the Klein disk, and the
pseudosphere as a surface embedded in 3D.

Sub-packages provide composable bidirectional transforms (package
transform), the pseudosphere embedding and a geodesic tracer (package
pseudosphere), a perspective camera (package camera), geodesics by
straight lines in the Klein disk (package geodesic) and the four
linked model views (package models).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hyperbolic

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic")
}

var (
	// ErrDomain indicates an input outside of a map's domain, e.g. inverting
	// at the center of a circle or converting a point on the unit circle.
	ErrDomain = errors.New("point outside of domain")
	// ErrNonConvergence indicates a numeric search which did not reach its
	// tolerance. Functions returning it still return their best estimate.
	ErrNonConvergence = errors.New("numeric search did not converge")
)

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
