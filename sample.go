package hyperbolic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// span returns n equally spaced parameters from lo to hi, both included.
func span(n int, lo, hi float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// LinePoints samples n points on the straight segment from a to b.
// For n ≥ 2 the first and last point are exactly a and b, for n ≤ 0 the
// result is nil.
func LinePoints(a, b Point, n int) []Point {
	ts := span(n, 0, 1)
	if len(ts) == 0 {
		return nil
	}
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = a.Lerp(b, t)
	}
	return pts
}

// EllipsePoints samples n points on the closed curve
//
//	center + a·cos t + b·sin t,   0 ≤ t ≤ 2π
//
// with conjugate semi-axes a and b. The first and last point coincide.
func EllipsePoints(center, a, b Point, n int) []Point {
	ts := span(n, 0, 2*math.Pi)
	if len(ts) == 0 {
		return nil
	}
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = center.Add(a.Scaled(math.Cos(t))).Add(b.Scaled(math.Sin(t)))
	}
	return pts
}

// CirclePoints samples n points on circle c.
func CirclePoints(c Circle, n int) []Point {
	tracer().Debugf("sampling %s with %d points", c, n)
	return EllipsePoints(c.Center, P(c.R, 0), P(0, c.R), n)
}
