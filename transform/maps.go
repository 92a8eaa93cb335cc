package transform

import (
	"fmt"

	"github.com/npillmayer/hyperbolic"
)

type affine struct {
	name   string
	m, inv hyperbolic.AT
}

// Affine creates an exact transform from an invertible affine matrix.
func Affine(name string, m hyperbolic.AT) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	return &affine{name: name, m: m, inv: inv}, nil
}

func (a *affine) Forward(p hyperbolic.Point) (hyperbolic.Point, error) {
	return a.m.Transform(p), nil
}

func (a *affine) Backward(p hyperbolic.Point) (hyperbolic.Point, error) {
	return a.inv.Transform(p), nil
}

func (a *affine) Invertibility() Invertibility { return Exact }

func (a *affine) String() string { return a.name }

// Linear maps rectangle from onto rectangle to, scaling each axis
// independently. Both rectangles must have non-zero extent.
func Linear(from, to hyperbolic.Rect) (Transform, error) {
	if hyperbolic.Is0(from.Size.X) || hyperbolic.Is0(from.Size.Y) ||
		hyperbolic.Is0(to.Size.X) || hyperbolic.Is0(to.Size.Y) {
		return nil, fmt.Errorf("%w: cannot map %s onto %s", hyperbolic.ErrDomain, from, to)
	}
	m := hyperbolic.Translation(from.Origin.Scaled(-1)).
		Combine(hyperbolic.Scaling(to.Size.X/from.Size.X, to.Size.Y/from.Size.Y)).
		Combine(hyperbolic.Translation(to.Origin))
	return Affine(fmt.Sprintf("linear %s→%s", from, to), m)
}

// FlipX mirrors points at the y-axis.
func FlipX() Transform {
	return Involution("flip-x", func(p hyperbolic.Point) (hyperbolic.Point, error) {
		return hyperbolic.P3(-p.X, p.Y, p.Z), nil
	})
}

// FlipYWithin mirrors points vertically in place within r, i.e. the top and
// bottom edge of r swap.
func FlipYWithin(r hyperbolic.Rect) Transform {
	return Involution("flip-y", func(p hyperbolic.Point) (hyperbolic.Point, error) {
		return hyperbolic.P3(p.X, r.YMax()-p.Y+r.YMin(), p.Z), nil
	})
}

// CircleInversion inverts points at circle c. It is its own inverse.
func CircleInversion(c hyperbolic.Circle) Transform {
	return Involution("inversion at "+c.String(), c.Invert)
}

// PoincareToKlein converts from the Poincaré disk model to the Klein disk
// model, both bounded by c.
func PoincareToKlein(c hyperbolic.Circle) Transform {
	return New("Poincaré→Klein", c.PoincareToKlein, c.KleinToPoincare, Exact)
}
