/*
Package geodesic constructs geodesics of the hyperbolic plane.

In the Klein disk model geodesics are straight chords. A geodesic between
two points of the upper half-plane is therefore found by mapping both
points into the Klein disk, sampling the chord between them, and mapping
the samples back. The resulting polyline may then be mapped forward into
any of the other models.

Geodesics keep only their endpoints. Curves are derived on every request.
*/
package geodesic

import (
	"fmt"
	"image/color"
	"math"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.geodesic'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.geodesic")
}

// InversionCircle maps the upper half-plane onto the unit disk: the real
// axis goes to the unit circle and (0,1) to the origin. Its center lies
// below the real axis, outside of the upper half-plane.
var InversionCircle = hyperbolic.Circle{Center: hyperbolic.P(0, -1), R: math.Sqrt2}

// UpperHalfPlaneToKlein returns the exact transform from the upper
// half-plane to the Klein disk model, bounded by the unit circle.
func UpperHalfPlaneToKlein() *transform.Chain {
	return transform.Compose(
		transform.CircleInversion(InversionCircle),
		transform.PoincareToKlein(hyperbolic.UnitCircle),
	)
}

// KleinLine samples n points of the geodesic from a to b. toKlein maps
// from the coordinates of a and b into a Klein disk model (or any affine
// image of it) and has to be invertible. The returned points are in the
// coordinates of a and b. The first and last point are exactly a and b.
func KleinLine(toKlein transform.Transform, a, b hyperbolic.Point, n int) ([]hyperbolic.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: geodesic needs at least 2 samples, have %d", hyperbolic.ErrDomain, n)
	}
	if !transform.Invertible(toKlein) {
		return nil, fmt.Errorf("%w: cannot map chord back", transform.ErrBackwardUnsupported)
	}
	ka, err := toKlein.Forward(a)
	if err != nil {
		return nil, err
	}
	kb, err := toKlein.Forward(b)
	if err != nil {
		return nil, err
	}
	chord := hyperbolic.LinePoints(ka, kb, n)
	pts, err := transform.MapAllBackward(toKlein, chord)
	if err != nil {
		return pts, err
	}
	pts[0], pts[n-1] = a, b
	return pts, nil
}

// Geodesic is a geodesic of the upper half-plane between two endpoints,
// together with its display attributes.
type Geodesic struct {
	A, B      hyperbolic.Point // endpoints in the upper half-plane
	Color     color.RGBA
	Highlight [2]bool // per endpoint, e.g. while hovered or dragged
}

// New creates a geodesic between a and b. Both have to lie in the upper
// half-plane.
func New(a, b hyperbolic.Point, c color.RGBA) (*Geodesic, error) {
	for _, p := range []hyperbolic.Point{a, b} {
		if !(p.Y > 0) {
			return nil, fmt.Errorf("%w: endpoint %s not in upper half-plane", hyperbolic.ErrDomain, p)
		}
	}
	return &Geodesic{A: a.XY(), B: b.XY(), Color: c}, nil
}

// Endpoint returns endpoint i, i.e. A for 0 and B for 1.
func (g *Geodesic) Endpoint(i int) hyperbolic.Point {
	if i == 0 {
		return g.A
	}
	return g.B
}

func (g *Geodesic) String() string {
	return fmt.Sprintf("geodesic[%s–%s]", g.A, g.B)
}

// Curve samples the geodesic with n points in upper half-plane
// coordinates.
func (g *Geodesic) Curve(n int) ([]hyperbolic.Point, error) {
	return KleinLine(UpperHalfPlaneToKlein(), g.A, g.B, n)
}

// MoveEndpoint sets endpoint i to the position of the screen point, mapped
// back through tf, the transform of the view the screen point belongs to.
// Views without backward mapping (e.g. perspective ones) fail with
// transform.ErrBackwardUnsupported. Positions outside of the upper
// half-plane leave the geodesic unchanged.
func (g *Geodesic) MoveEndpoint(i int, screen hyperbolic.Point, tf transform.Transform) error {
	if i < 0 || i > 1 {
		panic(fmt.Sprintf("geodesic endpoint index %d out of range", i))
	}
	p, err := tf.Backward(screen)
	if err != nil {
		return err
	}
	p = p.XY()
	if !(p.Y > 0) || !p.IsFinite() {
		return fmt.Errorf("%w: %s not in upper half-plane", hyperbolic.ErrDomain, p)
	}
	if i == 0 {
		g.A = p
	} else {
		g.B = p
	}
	tracer().Debugf("moved endpoint %d of %s", i, g)
	return nil
}

// Nearest finds the endpoint closest to the screen point, as drawn by tf,
// and highlights it if it is within radius. It returns the endpoint index
// and its screen distance, or -1 if none is close enough. Highlighting of
// the other endpoint is cleared.
func (g *Geodesic) Nearest(screen hyperbolic.Point, tf transform.Transform, radius float64) (int, float64) {
	g.Highlight = [2]bool{}
	found, best := -1, radius
	for i := 0; i < 2; i++ {
		q, err := tf.Forward(g.Endpoint(i))
		if err != nil {
			continue
		}
		if d := q.XY().Dist(screen.XY()); d <= best {
			found, best = i, d
		}
	}
	if found < 0 {
		return -1, math.Inf(1)
	}
	g.Highlight[found] = true
	return found, best
}
