// Package bisect finds inverses of monotonic scalar functions by bisection.
//
// It is used wherever an inverse has no closed form, e.g. for the height
// profile of the pseudosphere or for keeping a traced geodesic on the
// surface.
package bisect

import (
	"fmt"
	"math"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.bisect'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.bisect")
}

// Bisection holds the parameters of a bisection search.
type Bisection struct {
	Tolerance     float64 // half-width of the final bracket
	MaxIterations int     // cap on the number of halvings
}

// Default is a tolerance of 1e-6, capped at 200 iterations.
var Default = Bisection{Tolerance: 1e-6, MaxIterations: 200}

// Solve uses Default to search x in [lo,hi] with f(x) = target.
func Solve(f func(float64) float64, target, lo, hi float64) (float64, error) {
	return Default.Solve(f, target, lo, hi)
}

// Solve searches x in [lo,hi] with f(x) = target. f has to be continuous,
// and f(x) − target has to change sign exactly once on the interval.
// Increasing and decreasing functions are both fine.
//
// The search stops as soon as the bracket is narrower than twice the
// tolerance, so the result is within Tolerance of the true root. If the
// target is not bracketed by f(lo) and f(hi), the end with the smaller
// error is returned together with ErrNonConvergence. If the iteration cap
// is reached first, the midpoint of the last bracket is returned together
// with ErrNonConvergence.
func (b Bisection) Solve(f func(float64) float64, target, lo, hi float64) (float64, error) {
	if !(b.Tolerance > 0) || b.MaxIterations <= 0 {
		return lo, fmt.Errorf("%w: invalid bisection parameters %+v", hyperbolic.ErrDomain, b)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo)-target, f(hi)-target
	if math.IsNaN(flo) || math.IsNaN(fhi) {
		return lo, fmt.Errorf("%w: function undefined at [%g,%g]", hyperbolic.ErrDomain, lo, hi)
	}
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case (flo < 0) == (fhi < 0):
		best := lo
		if math.Abs(fhi) < math.Abs(flo) {
			best = hi
		}
		return best, fmt.Errorf("%w: target %g not bracketed by f(%g)=%g, f(%g)=%g",
			hyperbolic.ErrNonConvergence, target, lo, flo+target, hi, fhi+target)
	}
	for i := 0; i < b.MaxIterations; i++ {
		mid := lo + (hi-lo)/2
		if (hi-lo)/2 < b.Tolerance {
			return mid, nil
		}
		fmid := f(mid) - target
		if fmid == 0 {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	mid := lo + (hi-lo)/2
	tracer().Debugf("bisection capped at %d iterations, bracket [%g,%g]", b.MaxIterations, lo, hi)
	return mid, fmt.Errorf("%w: %d iterations left bracket [%g,%g]",
		hyperbolic.ErrNonConvergence, b.MaxIterations, lo, hi)
}
