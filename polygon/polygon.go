/*
Package polygon implements polygons in the plane, as they are used for the
clip regions of model views.

Polygons are built either from a list of knots

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

or from a bounding box. Boolean operations on polygons are delegated to
polyclip (github.com/akavel/polyclip-go).
*/
package polygon

import (
	"fmt"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'hyperbolic.polygon'.
func L() tracing.Trace {
	return tracing.Select("hyperbolic.polygon")
}

// Polygon is a set of closed contours. Areas covered by an odd number of
// contours are inside.
type Polygon struct {
	pg     polyclip.Polygon
	open   polyclip.Contour
	closed bool
}

// NullPolygon returns an empty polygon, ready to receive knots.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot to the contour under construction.
// It is an error to add knots to a closed polygon.
func (pg *Polygon) Knot(p hyperbolic.Point) *Polygon {
	if pg.closed {
		panic("cannot add knot to closed polygon")
	}
	pg.open.Add(polyclip.Point{X: p.X, Y: p.Y})
	return pg
}

// Cycle closes the contour under construction. Contours with less than
// three knots are dropped.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.open) > 2 {
		pg.pg.Add(pg.open)
	} else if len(pg.open) > 0 {
		L().Debugf("dropping degenerate contour with %d knots", len(pg.open))
	}
	pg.open = nil
	pg.closed = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(a, b hyperbolic.Point) *Polygon {
	return NullPolygon().
		Knot(hyperbolic.P(a.X, a.Y)).
		Knot(hyperbolic.P(b.X, a.Y)).
		Knot(hyperbolic.P(b.X, b.Y)).
		Knot(hyperbolic.P(a.X, b.Y)).
		Cycle()
}

// FromRect creates a polygon covering r.
func FromRect(r hyperbolic.Rect) *Polygon {
	return Box(hyperbolic.P(r.XMin(), r.YMin()), hyperbolic.P(r.XMax(), r.YMax()))
}

// FromPoints creates a polygon from a closed polyline. A last point equal
// to the first one is dropped.
func FromPoints(pts []hyperbolic.Point) *Polygon {
	if n := len(pts); n > 1 && pts[0].Equal(pts[n-1]) {
		pts = pts[:n-1]
	}
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// N returns the number of knots of all contours.
func (pg *Polygon) N() int {
	return pg.pg.NumVertices()
}

// IsEmpty is a predicate: does pg cover nothing?
func (pg *Polygon) IsEmpty() bool {
	return len(pg.pg) == 0
}

// Contours returns the knots of each contour.
func (pg *Polygon) Contours() [][]hyperbolic.Point {
	cs := make([][]hyperbolic.Point, len(pg.pg))
	for i, c := range pg.pg {
		cs[i] = make([]hyperbolic.Point, len(c))
		for j, p := range c {
			cs[i][j] = hyperbolic.P(p.X, p.Y)
		}
	}
	return cs
}

// Contains is a predicate: is p inside of pg?
func (pg *Polygon) Contains(p hyperbolic.Point) bool {
	pt := polyclip.Point{X: p.X, Y: p.Y}
	inside := false
	for _, c := range pg.pg {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the smallest rectangle containing all contours.
func (pg *Polygon) BoundingBox() hyperbolic.Rect {
	if pg.IsEmpty() {
		return hyperbolic.Rect{}
	}
	bb := pg.pg.BoundingBox()
	return hyperbolic.Rect{
		Origin: hyperbolic.P(bb.Min.X, bb.Min.Y),
		Size:   hyperbolic.P(bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y),
	}
}

// Intersect returns the intersection of two closed polygons.
func (pg *Polygon) Intersect(other *Polygon) *Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Union returns the union of two closed polygons.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	return pg.construct(polyclip.UNION, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	if !pg.closed || !other.closed {
		panic("boolean operation on open polygon")
	}
	return &Polygon{pg: pg.pg.Construct(op, other.pg), closed: true}
}

// AsString returns a polygon in a debugging-friendly format.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, c := range pg.Contours() {
		if i > 0 {
			sb.WriteString(" ")
		}
		for _, p := range c {
			sb.WriteString(p.String())
			sb.WriteString("--")
		}
		sb.WriteString("cycle")
	}
	if sb.Len() == 0 {
		return "<empty polygon>"
	}
	return sb.String()
}

func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon[%d contours, %d knots]", len(pg.pg), pg.N())
}
