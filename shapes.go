package hyperbolic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/jbeda/geom"
)

// === Rectangles ============================================================

// Rect is an axis-parallel rectangle, given by its origin (the corner with
// minimal coordinates) and its size.
type Rect struct {
	Origin Point
	Size   Point
}

// NewRect creates a rectangle. Negative size components are in ErrDomain.
func NewRect(origin, size Point) (Rect, error) {
	if size.X < 0 || size.Y < 0 {
		return Rect{}, fmt.Errorf("%w: rectangle size %s", ErrDomain, size)
	}
	return Rect{Origin: origin.XY(), Size: size.XY()}, nil
}

// R is a quick notation for constructing a rectangle from floats.
// It panics for negative sizes.
func R(x, y, w, h float64) Rect {
	r, err := NewRect(P(x, y), P(w, h))
	if err != nil {
		panic(err)
	}
	return r
}

// XMin is the left edge of r.
func (r Rect) XMin() float64 { return r.Origin.X }

// XMax is the right edge of r.
func (r Rect) XMax() float64 { return r.Origin.X + r.Size.X }

// YMin is the lower edge of r, in screen coordinates the top edge.
func (r Rect) YMin() float64 { return r.Origin.Y }

// YMax is the upper edge of r, in screen coordinates the bottom edge.
func (r Rect) YMax() float64 { return r.Origin.Y + r.Size.Y }

// Center of the rectangle.
func (r Rect) Center() Point {
	return r.Origin.Add(r.Size.Scaled(0.5))
}

// Contains is a predicate: is p inside r, borders included?
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin() && p.X <= r.XMax() && p.Y >= r.YMin() && p.Y <= r.YMax()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s+%s]", r.Origin, r.Size)
}

// Geom returns r as a geom.Rect.
func (r Rect) Geom() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.XMin(), Y: r.YMin()},
		Max: geom.Coord{X: r.XMax(), Y: r.YMax()},
	}
}

// RectFromGeom converts a geom.Rect.
func RectFromGeom(g geom.Rect) Rect {
	return Rect{Origin: P(g.Min.X, g.Min.Y), Size: P(g.Width(), g.Height())}
}

// Bounds returns the bounding box of all points of all polylines. It returns
// false if there are no points at all.
func Bounds(polylines ...[]Point) (geom.Rect, bool) {
	var bounds geom.Rect
	found := false
	for _, pl := range polylines {
		for _, p := range pl {
			c := geom.Coord{X: p.X, Y: p.Y}
			if !found {
				bounds = geom.Rect{Min: c, Max: c}
				found = true
				continue
			}
			bounds.ExpandToContainCoord(c)
		}
	}
	return bounds, found
}

// === Circles ===============================================================

// Circle is given by center and radius.
type Circle struct {
	Center Point
	R      float64
}

// UnitCircle is the reference circle of the disk models.
var UnitCircle = Circle{Center: Origin, R: 1}

// NewCircle creates a circle. Radius has to be positive.
func NewCircle(center Point, r float64) (Circle, error) {
	if !(r > 0) {
		return Circle{}, fmt.Errorf("%w: circle radius %g", ErrDomain, r)
	}
	return Circle{Center: center.XY(), R: r}, nil
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%s,%g)", c.Center, c.R)
}

// Rect returns the bounding square of c.
func (c Circle) Rect() Rect {
	return Rect{
		Origin: c.Center.Sub(P(c.R, c.R)),
		Size:   P(2*c.R, 2*c.R),
	}
}

// Invert returns the inversion of p at c:
//
//	c + (p−c)·r² / |p−c|²  =  c + r² / conj(p−c)
//
// Inversion is its own inverse. The center itself is in ErrDomain.
func (c Circle) Invert(p Point) (Point, error) {
	d := p.C() - c.Center.C()
	if d == 0 {
		return p, fmt.Errorf("%w: cannot invert %s at its own center", ErrDomain, c)
	}
	r2 := complex(c.R*c.R, 0)
	return C2P(c.Center.C() + r2/cmplx.Conj(d)), nil
}

// normalized returns p relative to c, scaled to the unit circle.
func (c Circle) normalized(p Point) complex128 {
	return (p.C() - c.Center.C()) / complex(c.R, 0)
}

func (c Circle) denormalized(q complex128) Point {
	return C2P(c.Center.C() + q*complex(c.R, 0))
}

// PoincareToKlein converts a point of the Poincaré disk model, bounded by c,
// to the Klein disk model. A point at Poincaré radius ρ is moved to Klein
// radius 2ρ/(1+ρ²) along the same ray. Points on or outside c are in ErrDomain.
func (c Circle) PoincareToKlein(p Point) (Point, error) {
	q := c.normalized(p)
	rho := cmplx.Abs(q)
	if !(rho < 1) {
		return p, fmt.Errorf("%w: %s not inside Poincaré disk %s", ErrDomain, p, c)
	}
	return c.denormalized(q * complex(2/(1+rho*rho), 0)), nil
}

// KleinToPoincare converts a point of the Klein disk model, bounded by c, to
// the Poincaré disk model, solving k = 2ρ/(1+ρ²) for ρ:
//
//	ρ = k / (1 + √(1−k²))
//
// Points on or outside c are in ErrDomain.
func (c Circle) KleinToPoincare(p Point) (Point, error) {
	q := c.normalized(p)
	k := cmplx.Abs(q)
	if !(k < 1) {
		return p, fmt.Errorf("%w: %s not inside Klein disk %s", ErrDomain, p, c)
	}
	return c.denormalized(q * complex(1/(1+math.Sqrt(1-k*k)), 0)), nil
}
