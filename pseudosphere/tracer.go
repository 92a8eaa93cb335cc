package pseudosphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/bisect"
)

// ErrDegenerateStep indicates seed points which do not define a direction.
var ErrDegenerateStep = errors.New("geodesic step without direction")

// Tracer walks a geodesic of the pseudosphere, starting from two nearby
// points. Each step rotates the previous surface point around the current
// one, within the plane spanned by the incoming segment and the surface
// normal, until the rotated point lies on the surface again. Keeping the
// surface normal in the plane of consecutive segments is the discrete
// condition for a geodesic.
//
// A Tracer is used like a bufio.Scanner:
//
//	tr, err := pseudosphere.NewTracer(a, b, 2000)
//	for tr.Scan() {
//	    p := tr.Point()
//	    …
//	}
//	if err := tr.Err(); err != nil { … }
//
// The points are in upper half-plane coordinates. The first two points are
// the seeds a and b, followed by at most maxPoints traced points. The walk
// ends early when it leaves the embedding across the rim (see Exit).
type Tracer struct {
	b        hyperbolic.Point // current point, plane coordinates
	sa, sb   hyperbolic.Point // previous and current point on the surface
	seeds    []hyperbolic.Point
	cur      hyperbolic.Point
	steps    int
	max      int
	exited   bool
	done     bool
	err      error
	angleFit bisect.Bisection
}

// NewTracer prepares a walk from a to b, both points of the upper
// half-plane with y ≥ 1.
func NewTracer(a, b hyperbolic.Point, maxPoints int) (*Tracer, error) {
	sa, err := Embed(a)
	if err != nil {
		return nil, err
	}
	sb, err := Embed(b)
	if err != nil {
		return nil, err
	}
	if hyperbolic.Is0(sa.Dist(sb)) {
		return nil, fmt.Errorf("%w: seeds %s and %s coincide on the surface", ErrDegenerateStep, a, b)
	}
	if maxPoints < 0 {
		maxPoints = 0
	}
	return &Tracer{
		b:        b,
		sa:       sa,
		sb:       sb,
		seeds:    []hyperbolic.Point{a, b},
		max:      maxPoints,
		angleFit: bisect.Default,
	}, nil
}

// Scan advances to the next point. It returns false when the walk is over,
// either because maxPoints have been traced, the walk left the embedding,
// or an error occurred.
func (tr *Tracer) Scan() bool {
	if len(tr.seeds) > 0 {
		tr.cur, tr.seeds = tr.seeds[0], tr.seeds[1:]
		return true
	}
	if tr.done || tr.steps >= tr.max {
		tr.done = true
		return false
	}
	next, ok := tr.step()
	if !ok {
		tr.done = true
		return false
	}
	tr.steps++
	tr.cur = next
	return true
}

// Point returns the point found by the latest call to Scan.
func (tr *Tracer) Point() hyperbolic.Point {
	return tr.cur
}

// Err returns the error which ended the walk, if any. Leaving the
// embedding is not an error.
func (tr *Tracer) Err() error {
	return tr.err
}

// Exit is a predicate: did the walk end by crossing the rim (z < 0)?
func (tr *Tracer) Exit() bool {
	return tr.exited
}

func (tr *Tracer) step() (hyperbolic.Point, bool) {
	n, err := Normal(tr.b)
	if err != nil {
		tr.err = err
		return tr.b, false
	}
	incoming := tr.sb.Sub(tr.sa)
	axis := incoming.Cross(n)
	if hyperbolic.Is0(axis.Len()) {
		tr.err = fmt.Errorf("%w: step %d runs along the surface normal", ErrDegenerateStep, tr.steps)
		return tr.b, false
	}
	axis = axis.Normalized()
	candidate := func(theta float64) hyperbolic.Point {
		return tr.sa.RotatedAround(tr.sb, axis, theta)
	}
	// signed distance to the funnel: positive inside
	offSurface := func(theta float64) float64 {
		c := candidate(theta)
		u, _ := UFromZ(math.Max(0, c.Z))
		return RadiusFromU(u) - c.RadiusXY()
	}
	theta, err := tr.angleFit.Solve(offSurface, 0, math.Pi/2, 3*math.Pi/2)
	c := candidate(theta)
	// at the rim the bracket may dip below z = 0 and lose its sign change
	crossing := c.Z < 0 || (err != nil &&
		(candidate(math.Pi/2).Z < 0 || candidate(3*math.Pi/2).Z < 0))
	if crossing {
		tracer().Debugf("geodesic left the pseudosphere after %d steps", tr.steps)
		tr.exited = true
		return tr.b, false
	}
	if err != nil {
		tr.err = fmt.Errorf("geodesic step %d: %w", tr.steps, err)
		return tr.b, false
	}
	u, err := UFromZ(c.Z)
	if err != nil {
		tr.err = fmt.Errorf("geodesic step %d: %w", tr.steps, err)
		return tr.b, false
	}
	dv := hyperbolic.SignedAngleXY(tr.sb, c)
	next := FromInput(hyperbolic.P(tr.b.X+dv, u))
	tr.sa, tr.sb, tr.b = tr.sb, c, next
	return next, true
}

// Trace collects a whole geodesic walk from a to b, see Tracer. On error,
// the points traced so far are returned together with the error.
func Trace(a, b hyperbolic.Point, maxPoints int) ([]hyperbolic.Point, error) {
	tr, err := NewTracer(a, b, maxPoints)
	if err != nil {
		return nil, err
	}
	pts := make([]hyperbolic.Point, 0, maxPoints+2)
	for tr.Scan() {
		pts = append(pts, tr.Point())
	}
	tracer().Infof("traced geodesic from %s with %d points, exit=%v", a, len(pts), tr.Exit())
	return pts, tr.Err()
}
