package models

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/pseudosphere"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const canvasW, canvasH = 1400, 600

func TestLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rects, err := Layout(canvasW, canvasH)
	assert.NoError(t, err)
	if assert.Len(t, rects, 4) {
		for i, x := range []float64{40, 380, 720, 1060} {
			assert.Equal(t, hyperbolic.R(x, 50, 300, 300), rects[i])
		}
	}
	rects, _ = Layout(4000, 400)
	assert.Equal(t, 320.0, rects[0].Size.X, "height limits the size")
	_, err = Layout(200, 600)
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

func TestSliders(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v, h := FromSliders(0, 0)
	assert.Equal(t, 20.0, v)
	assert.Equal(t, 0.0, h)
	v, h = FromSliders(100, 50)
	assert.Equal(t, -20.0, v)
	assert.InDelta(t, math.Pi, h, 1e-15)
	cfg := DefaultViewConfig()
	cfg.SetSliders(50, 25)
	assert.Equal(t, 0.0, cfg.Vertical)
	assert.InDelta(t, math.Pi/2, cfg.Horizontal, 1e-15)
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, []Kind{UpperHalfPlane, PoincareDisk, Pseudosphere, KleinDisk}, Kinds())
	assert.Equal(t, "klein-disk", KleinDisk.String())
	assert.Equal(t, "Poincaré disk model", PoincareDisk.Title())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.True(t, KleinDisk.IsDisk())
	assert.False(t, Pseudosphere.IsDisk())
	_, err := Kind(7).Transform(hyperbolic.R(0, 0, 100, 100), DefaultViewConfig())
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

func TestModelTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultViewConfig()
	rects, _ := Layout(canvasW, canvasH)
	tests := []struct {
		kind   Kind
		p, q   hyperbolic.Point
		invert transform.Invertibility
	}{
		{UpperHalfPlane, hyperbolic.P(-7.5, 0), hyperbolic.P(40, 350), transform.Exact},
		{UpperHalfPlane, hyperbolic.P(7.5, 15), hyperbolic.P(340, 50), transform.Exact},
		{PoincareDisk, hyperbolic.P(0, 1), hyperbolic.P(530, 325), transform.Exact},
		{KleinDisk, hyperbolic.P(0, 1), hyperbolic.P(1210, 293.75), transform.Exact},
	}
	for _, test := range tests {
		tf, err := test.kind.Transform(rects[test.kind], cfg)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, test.invert, tf.Invertibility())
		q, err := tf.Forward(test.p)
		assert.NoError(t, err)
		assert.True(t, q.Equal(test.q), "%s maps %s to %s, expected %s", test.kind, test.p, q, test.q)
		p, err := tf.Backward(q)
		assert.NoError(t, err)
		assert.InDelta(t, 0, p.Dist(test.p), 1e-9)
	}
	// the real axis is the boundary of the disk models
	tf, _ := PoincareDisk.Transform(rects[PoincareDisk], cfg)
	for _, x := range []float64{-5, 0, 0.5, 12} {
		q, err := tf.Forward(hyperbolic.P(x, 0))
		assert.NoError(t, err)
		assert.InDelta(t, 250, q.Dist(hyperbolic.P(530, 325)), 1e-9)
	}
	tf, _ = Pseudosphere.Transform(rects[Pseudosphere], cfg)
	assert.Equal(t, transform.Unsupported, tf.Invertibility())
	_, err := tf.Backward(rects[Pseudosphere].Center())
	assert.True(t, errors.Is(err, transform.ErrBackwardUnsupported))
}

func TestGraphUpdate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultViewConfig()
	rects, _ := Layout(canvasW, canvasH)
	g, err := NewGraph(Pseudosphere, rects[Pseudosphere], cfg)
	if err != nil {
		t.Fatal(err)
	}
	p := hyperbolic.P(0.5, 2)
	q1, err := g.Transform.Forward(p)
	assert.NoError(t, err)
	cfg.SetSliders(10, 60)
	g.Update(cfg)
	q2, err := g.Transform.Forward(p)
	assert.NoError(t, err)
	assert.False(t, q1.Equal(q2), "camera orbit should change the projection")
	fresh, _ := Pseudosphere.Transform(rects[Pseudosphere], cfg)
	q3, _ := fresh.Forward(p)
	assert.True(t, q2.Equal(q3))
}

func countRoles(d *Drawing) map[Role]int {
	roles := make(map[Role]int)
	for _, s := range d.Strokes {
		roles[s.Role]++
	}
	return roles
}

func TestDraw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewScene(canvasW, canvasH, DefaultViewConfig())
	if err != nil {
		t.Fatal(err)
	}
	drawings, err := s.Draw()
	assert.NoError(t, err)
	if !assert.Len(t, drawings, 4) {
		return
	}
	for i, d := range drawings {
		roles := countRoles(d)
		assert.Equal(t, Kinds()[i].Title(), d.Title)
		assert.Greater(t, roles[MinorAxis], 10, "%s grid", d.Title)
		assert.Greater(t, roles[MajorAxis], 0, "%s axes", d.Title)
		assert.Greater(t, roles[UnitLine], 0, "%s unit line", d.Title)
		assert.GreaterOrEqual(t, roles[GeodesicCurve], 2, "%s geodesics", d.Title)
		assert.Equal(t, 0, roles[TracedGeodesic])
		assert.Equal(t, Kinds()[i].IsDisk(), roles[Boundary] > 0)
		for _, st := range d.Strokes {
			assert.GreaterOrEqual(t, len(st.Points), 2)
			for _, p := range st.Points {
				if !p.IsFinite() {
					t.Fatalf("%s: stroke %s has non-finite point %s", d.Title, st.Role, p)
				}
			}
		}
		assert.True(t, d.Clip.Contains(d.Screen.Center()), "%s clip region", d.Title)
	}
	uhp := drawings[UpperHalfPlane]
	bounds := hyperbolic.RectFromGeom(uhp.Bounds)
	assert.LessOrEqual(t, bounds.XMin(), uhp.Screen.XMin())
	assert.GreaterOrEqual(t, bounds.XMax(), uhp.Screen.XMax())
	// disk models clip to the boundary circle
	poincare := drawings[PoincareDisk]
	assert.False(t, poincare.Clip.Contains(hyperbolic.P(381, 51)))
}

func TestKleinGeodesicsAreStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _ := NewScene(canvasW, canvasH, DefaultViewConfig())
	d, err := s.Graphs[KleinDisk].Draw(s.Geodesics[:1], nil, s.Config)
	assert.NoError(t, err)
	var curve []hyperbolic.Point
	for _, st := range d.Strokes {
		if st.Role == GeodesicCurve {
			curve = st.Points
		}
	}
	if !assert.Len(t, curve, s.Config.GeodesicSamples) {
		return
	}
	a, b := curve[0], curve[len(curve)-1]
	dir := b.Sub(a).Normalized()
	for _, p := range curve {
		off := p.Sub(a).Cross(dir).Len()
		if off > 1e-6 {
			t.Fatalf("%s is %g off the chord", p, off)
		}
	}
}

func TestTracedGeodesic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultViewConfig()
	cfg.ShowTrace = true
	s, _ := NewScene(canvasW, canvasH, cfg)
	drawings, err := s.Draw()
	assert.NoError(t, err)
	for _, d := range drawings {
		assert.Greater(t, countRoles(d)[TracedGeodesic], 0, "%s shows traced geodesic", d.Title)
	}
	pts, err := s.Trace()
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(pts), cfg.TraceMaxPoints+2)
}

func TestPickAndDrag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _ := NewScene(canvasW, canvasH, DefaultViewConfig())
	// endpoint (-6,1) of the first geodesic is drawn at (70,330)
	h, ok := s.Pick(hyperbolic.P(71, 331), 5)
	if !ok {
		t.Fatalf("expected endpoint under cursor")
	}
	assert.Equal(t, Handle{Graph: 0, Geodesic: 0, Endpoint: 0}, h)
	assert.True(t, s.Geodesics[0].Highlight[0])
	assert.NoError(t, s.Drag(h, hyperbolic.P(90, 310)))
	assert.True(t, s.Geodesics[0].A.Equal(hyperbolic.P(-5, 2)), "dragged to %s", s.Geodesics[0].A)
	_, ok = s.Pick(hyperbolic.P(200, 200), 5)
	assert.False(t, ok)
	assert.False(t, s.Geodesics[0].Highlight[0])
	_, ok = s.Pick(hyperbolic.P(5, 5), 5)
	assert.False(t, ok, "outside of all views")
	err := s.Drag(Handle{Graph: int(Pseudosphere), Geodesic: 0, Endpoint: 1}, hyperbolic.P(800, 200))
	assert.True(t, errors.Is(err, transform.ErrBackwardUnsupported))
	err = s.Drag(Handle{Graph: 9}, hyperbolic.P(0, 0))
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

func TestPalette(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Palette[0], PaletteColor(10))
	s, _ := NewScene(canvasW, canvasH, DefaultViewConfig())
	g, err := s.AddGeodesic(hyperbolic.P(0, 2), hyperbolic.P(1, 3))
	assert.NoError(t, err)
	assert.Equal(t, Palette[2], g.Color)
	_, err = s.AddGeodesic(hyperbolic.P(0, -2), hyperbolic.P(1, 3))
	assert.True(t, errors.Is(err, hyperbolic.ErrDomain))
}

func TestPickNearestOfCloseEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _ := NewScene(canvasW, canvasH, DefaultViewConfig())
	s.AddGeodesic(hyperbolic.P(0, 2), hyperbolic.P(3, 4))
	s.AddGeodesic(hyperbolic.P(0.1, 2), hyperbolic.P(-3, 4))
	// (0,2) is drawn at (190,310), (0.1,2) at (192,310)
	h, ok := s.Pick(hyperbolic.P(192, 310), 5)
	if !ok {
		t.Fatalf("expected endpoint under cursor")
	}
	assert.Equal(t, Handle{Graph: 0, Geodesic: 3, Endpoint: 0}, h)
	assert.True(t, s.Geodesics[3].Highlight[0])
	assert.Equal(t, [2]bool{}, s.Geodesics[2].Highlight, "only the picked endpoint is highlighted")
	h, _ = s.Pick(hyperbolic.P(190.5, 310), 5)
	assert.Equal(t, 2, h.Geodesic)
	assert.Equal(t, [2]bool{}, s.Geodesics[3].Highlight)
}

func TestFailedTraceIsRemembered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultViewConfig()
	cfg.ShowTrace = true
	cfg.TraceSeeds = [2]hyperbolic.Point{hyperbolic.P(0, 2), hyperbolic.P(0, 2)}
	s, _ := NewScene(canvasW, canvasH, cfg)
	_, err := s.Trace()
	assert.True(t, errors.Is(err, pseudosphere.ErrDegenerateStep))
	// the walk is not repeated, even with other seeds
	s.Config.TraceSeeds = DefaultViewConfig().TraceSeeds
	pts, err := s.Trace()
	assert.True(t, errors.Is(err, pseudosphere.ErrDegenerateStep))
	assert.Empty(t, pts)
	drawings, err := s.Draw()
	assert.NoError(t, err)
	assert.Len(t, drawings, 4)
}
