/*
Package camera projects 3D points onto a 2D screen with a pinhole camera.

The camera keeps its configuration in plain fields. Project reads them on
every call, so moving the eye (e.g. with Orbit) takes effect for the next
projection without any cached state.

Screen coordinates have y pointing down.
*/
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.camera'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.camera")
}

// OrbitRadius is the distance of the eye from the z-axis when positioned
// with Orbit.
const OrbitRadius = 10.0

// Camera is a pinhole camera.
type Camera struct {
	Eye          hyperbolic.Point // position of the camera
	LookAt       hyperbolic.Point // point the camera looks at
	Up           hyperbolic.Point // approximate up direction
	Focal        float64          // focal length, in screen units
	ScreenCenter hyperbolic.Point // screen position of the look-at point
}

// New creates a camera and checks its configuration.
func New(eye, lookAt, up hyperbolic.Point, focal float64, screenCenter hyperbolic.Point) (*Camera, error) {
	c := &Camera{
		Eye:          eye,
		LookAt:       lookAt,
		Up:           up,
		Focal:        focal,
		ScreenCenter: screenCenter,
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera) check() error {
	if !(c.Focal > 0) {
		return fmt.Errorf("%w: focal length %g", hyperbolic.ErrDomain, c.Focal)
	}
	dir := c.LookAt.Sub(c.Eye)
	if hyperbolic.Is0(dir.Len()) {
		return fmt.Errorf("%w: camera at %s looks at itself", hyperbolic.ErrDomain, c.Eye)
	}
	if hyperbolic.Is0(dir.Normalized().Cross(c.Up.Normalized()).Len()) {
		return fmt.Errorf("%w: up vector %s parallel to view direction", hyperbolic.ErrDomain, c.Up)
	}
	return nil
}

// View returns the view matrix of the current configuration. It maps the
// eye to the origin, looking down the negative z-axis with y up.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye.Vec(), c.LookAt.Vec(), c.Up.Vec())
}

// Project maps p to screen coordinates. Points at or behind the plane of
// the eye cannot be projected and return hyperbolic.ErrDomain.
func (c *Camera) Project(p hyperbolic.Point) (hyperbolic.Point, error) {
	if err := c.check(); err != nil {
		return p, err
	}
	v := c.View().Mul4x1(p.Vec().Vec4(1))
	depth := -v.Z()
	if depth <= hyperbolic.Epsilon {
		return p, fmt.Errorf("%w: %s is behind the camera", hyperbolic.ErrDomain, p)
	}
	s := c.Focal / depth
	return hyperbolic.P(c.ScreenCenter.X+v.X()*s, c.ScreenCenter.Y-v.Y()*s), nil
}

// OrbitPosition is the point on the circle of radius OrbitRadius around
// the z-axis, at angle horizontal and height vertical.
func OrbitPosition(horizontal, vertical float64) hyperbolic.Point {
	return hyperbolic.P3(OrbitRadius*math.Cos(horizontal), OrbitRadius*math.Sin(horizontal), vertical)
}

// Orbit moves the eye to OrbitPosition(horizontal, vertical).
func (c *Camera) Orbit(horizontal, vertical float64) {
	c.Eye = OrbitPosition(horizontal, vertical)
	tracer().Debugf("camera eye moved to %s", c.Eye)
}

// Transform wraps Project as a forward-only transform. The transform
// refers to c, i.e. it follows later changes of c's fields.
func (c *Camera) Transform() transform.Transform {
	return transform.ForwardOnly("camera", c.Project)
}
