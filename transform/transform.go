// Package transform implements bidirectional point transforms and their
// composition.
//
// A transform maps points forward from one coordinate space into another,
// and backward again. Not every forward map is practically invertible: a
// perspective camera would need ray/surface intersection to undo a
// projection. Transforms therefore declare how far their backward mapping
// can be trusted, and composed chains refuse backward mapping as soon as one
// of their stages cannot support it.
package transform

import (
	"errors"
	"fmt"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.transform'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.transform")
}

// ErrBackwardUnsupported is returned when mapping backward through a
// transform which is forward-only.
var ErrBackwardUnsupported = errors.New("backward mapping not supported")

// Invertibility states how far the backward mapping of a transform can be
// trusted.
type Invertibility int

const (
	// Exact: Backward(Forward(p)) = p up to floating point rounding.
	Exact Invertibility = iota
	// Approximate: Backward is a numerical approximation.
	Approximate
	// Unsupported: Backward always fails.
	Unsupported
)

func (inv Invertibility) String() string {
	switch inv {
	case Exact:
		return "exact"
	case Approximate:
		return "approximate"
	case Unsupported:
		return "unsupported"
	}
	return fmt.Sprintf("Invertibility(%d)", int(inv))
}

// Transform maps points between two coordinate spaces.
// Implementations must be pure: the same input yields the same output.
type Transform interface {
	Forward(hyperbolic.Point) (hyperbolic.Point, error)
	Backward(hyperbolic.Point) (hyperbolic.Point, error)
	Invertibility() Invertibility
}

// Func is a single direction of a transform.
type Func func(hyperbolic.Point) (hyperbolic.Point, error)

// Invertible is a predicate: may t be mapped backward?
func Invertible(t Transform) bool {
	return t.Invertibility() != Unsupported
}

// === Transforms from functions =============================================

type funcTransform struct {
	name     string
	forward  Func
	backward Func
	inv      Invertibility
}

// New creates a transform from a pair of functions. If backward is nil, the
// transform is forward-only regardless of inv.
func New(name string, forward, backward Func, inv Invertibility) Transform {
	if backward == nil {
		inv = Unsupported
	}
	return &funcTransform{name: name, forward: forward, backward: backward, inv: inv}
}

// ForwardOnly creates a transform without a backward mapping.
func ForwardOnly(name string, forward Func) Transform {
	return New(name, forward, nil, Unsupported)
}

// Involution creates an exact transform which is its own inverse, e.g.
// a mirror or a circle inversion.
func Involution(name string, f Func) Transform {
	return New(name, f, f, Exact)
}

// Identity maps every point onto itself.
func Identity() Transform {
	id := func(p hyperbolic.Point) (hyperbolic.Point, error) { return p, nil }
	return Involution("identity", id)
}

func (ft *funcTransform) Forward(p hyperbolic.Point) (hyperbolic.Point, error) {
	return ft.forward(p)
}

func (ft *funcTransform) Backward(p hyperbolic.Point) (hyperbolic.Point, error) {
	if ft.backward == nil {
		return p, fmt.Errorf("%w: %s", ErrBackwardUnsupported, ft.name)
	}
	return ft.backward(p)
}

func (ft *funcTransform) Invertibility() Invertibility {
	return ft.inv
}

func (ft *funcTransform) String() string {
	return ft.name
}

// === Composition ===========================================================

// Chain is an ordered sequence of transforms. Forward mapping runs the
// stages first to last, backward mapping runs the stages' backward
// functions last to first.
type Chain struct {
	stages []Transform
	inv    Invertibility
}

// Compose chains transforms. Nested chains are flattened, so grouping does
// not matter. The invertibility of a chain is the weakest one of its stages.
func Compose(ts ...Transform) *Chain {
	c := &Chain{inv: Exact}
	for _, t := range ts {
		if sub, ok := t.(*Chain); ok {
			c.stages = append(c.stages, sub.stages...)
		} else {
			c.stages = append(c.stages, t)
		}
		if t.Invertibility() > c.inv {
			c.inv = t.Invertibility()
		}
	}
	return c
}

// Len returns the number of stages.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Stage returns stage i.
func (c *Chain) Stage(i int) Transform {
	return c.stages[i]
}

// Forward maps p through all stages.
func (c *Chain) Forward(p hyperbolic.Point) (hyperbolic.Point, error) {
	var err error
	for i, t := range c.stages {
		if p, err = t.Forward(p); err != nil {
			return p, fmt.Errorf("forward stage %d (%s): %w", i, name(t), err)
		}
	}
	return p, nil
}

// Backward maps p backward through all stages, in reverse order. A chain
// with a forward-only stage fails before any stage is evaluated.
func (c *Chain) Backward(p hyperbolic.Point) (hyperbolic.Point, error) {
	if c.inv == Unsupported {
		for i, t := range c.stages {
			if !Invertible(t) {
				return p, fmt.Errorf("%w: stage %d (%s)", ErrBackwardUnsupported, i, name(t))
			}
		}
	}
	var err error
	for i := len(c.stages) - 1; i >= 0; i-- {
		t := c.stages[i]
		if p, err = t.Backward(p); err != nil {
			return p, fmt.Errorf("backward stage %d (%s): %w", i, name(t), err)
		}
	}
	return p, nil
}

// Invertibility is the weakest invertibility of all stages.
func (c *Chain) Invertibility() Invertibility {
	return c.inv
}

func (c *Chain) String() string {
	s := ""
	for i, t := range c.stages {
		if i > 0 {
			s += " → "
		}
		s += name(t)
	}
	return s
}

func name(t Transform) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}

// === Polylines =============================================================

// MapAll maps all points of a polyline forward. It stops at the first
// failing point.
func MapAll(t Transform, pts []hyperbolic.Point) ([]hyperbolic.Point, error) {
	return mapAll(t.Forward, pts)
}

// MapAllBackward maps all points of a polyline backward. It stops at the
// first failing point.
func MapAllBackward(t Transform, pts []hyperbolic.Point) ([]hyperbolic.Point, error) {
	if !Invertible(t) {
		return nil, fmt.Errorf("%w: %s", ErrBackwardUnsupported, name(t))
	}
	return mapAll(t.Backward, pts)
}

func mapAll(f Func, pts []hyperbolic.Point) ([]hyperbolic.Point, error) {
	out := make([]hyperbolic.Point, len(pts))
	for i, p := range pts {
		q, err := f(p)
		if err != nil {
			return out[:i], fmt.Errorf("point #%d %s: %w", i, p, err)
		}
		out[i] = q
	}
	return out, nil
}

// Split maps all points of a polyline forward. Points which cannot be
// mapped are dropped and break the polyline into pieces. Pieces with less
// than two points are discarded.
func Split(t Transform, pts []hyperbolic.Point) [][]hyperbolic.Point {
	var pieces [][]hyperbolic.Point
	var cur []hyperbolic.Point
	dropped := 0
	flush := func() {
		if len(cur) > 1 {
			pieces = append(pieces, cur)
		}
		cur = nil
	}
	for _, p := range pts {
		q, err := t.Forward(p)
		if err != nil || !q.IsFinite() {
			dropped++
			flush()
			continue
		}
		cur = append(cur, q)
	}
	flush()
	if dropped > 0 {
		tracer().Debugf("%s: dropped %d of %d points", name(t), dropped, len(pts))
	}
	return pieces
}
