package camera

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var screenCenter = hyperbolic.P(500, 200)

func testCamera(t *testing.T) *Camera {
	c, err := New(hyperbolic.P3(10, 0, 2), hyperbolic.P3(0, 0, 0.7), hyperbolic.P3(0, 0, 1), 1500, screenCenter)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLookAtProjectsToScreenCenter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testCamera(t)
	for _, h := range []float64{0, 0.5, math.Pi, 4} {
		c.Orbit(h, -3)
		q, err := c.Project(c.LookAt)
		assert.NoError(t, err)
		assert.True(t, q.Equal(screenCenter), "look-at projects to %s", q)
	}
}

func TestScreenOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testCamera(t)
	c.Eye = hyperbolic.P3(10, 0, 0.7)
	above, err := c.Project(c.LookAt.Add(hyperbolic.P3(0, 0, 1)))
	assert.NoError(t, err)
	assert.Less(t, above.Y, screenCenter.Y, "screen y points down")
	assert.InDelta(t, screenCenter.X, above.X, 1e-9)
	assert.InDelta(t, 150, screenCenter.Y-above.Y, 1e-9) // f·1/depth = 1500/10
	// looking from +x towards the origin, +y is to the right
	right, _ := c.Project(c.LookAt.Add(hyperbolic.P3(0, 1, 0)))
	assert.Greater(t, right.X, screenCenter.X)
}

func TestBehindCamera(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testCamera(t)
	_, err := c.Project(hyperbolic.P3(20, 0, 2))
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
	_, err = c.Project(c.Eye)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

// project is a reference implementation building the camera basis by
// Gram–Schmidt.
func project(c *Camera, p hyperbolic.Point) hyperbolic.Point {
	f := c.LookAt.Sub(c.Eye).Normalized()
	s := f.Cross(c.Up).Normalized()
	u := s.Cross(f)
	d := p.Sub(c.Eye)
	depth := f.Dot(d)
	return hyperbolic.P(c.ScreenCenter.X+c.Focal*s.Dot(d)/depth, c.ScreenCenter.Y-c.Focal*u.Dot(d)/depth)
}

func TestProjectAgainstBasis(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testCamera(t)
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		c.Orbit(rnd.Float64()*2*math.Pi, rnd.Float64()*40-20)
		p := hyperbolic.P3(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*3)
		q, err := c.Project(p)
		if !assert.NoError(t, err) {
			continue
		}
		r := project(c, p)
		assert.InDelta(t, 0, q.Dist(r), 1e-6, "projection of %s: %s ≠ %s", p, q, r)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	up := hyperbolic.P3(0, 0, 1)
	_, err := New(hyperbolic.P3(10, 0, 0), hyperbolic.Origin, up, 0, screenCenter)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain), "focal length must be positive")
	_, err = New(hyperbolic.Origin, hyperbolic.Origin, up, 1500, screenCenter)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain), "eye must differ from look-at")
	_, err = New(hyperbolic.P3(0, 0, 10), hyperbolic.Origin, up, 1500, screenCenter)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain), "up must not be parallel to view direction")
	c := testCamera(t)
	c.Focal = -1
	_, err = c.Project(hyperbolic.Origin)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

func TestTransformFollowsCamera(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testCamera(t)
	tf := c.Transform()
	assert.Equal(t, transform.Unsupported, tf.Invertibility())
	_, err := tf.Backward(screenCenter)
	assert.True(t, errors.Is(err, transform.ErrBackwardUnsupported))
	p := hyperbolic.P3(0.5, 0.5, 1)
	q1, _ := tf.Forward(p)
	c.Orbit(math.Pi/2, 5)
	q2, _ := tf.Forward(p)
	assert.False(t, q1.Equal(q2), "moving the eye changes the projection")
	q3, _ := c.Project(p)
	assert.Equal(t, q3, q2)
}
