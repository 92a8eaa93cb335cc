package models

import (
	"image/color"
	"math"

	"github.com/jbeda/geom"
	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/camera"
	"github.com/npillmayer/hyperbolic/geodesic"
	"github.com/npillmayer/hyperbolic/polygon"
	"github.com/npillmayer/hyperbolic/transform"
)

// Role tags a stroke with what it shows.
type Role int

// Roles of strokes, in drawing order.
const (
	MinorAxis Role = iota
	MajorAxis
	Boundary
	UnitLine
	GeodesicCurve
	TracedGeodesic
)

func (r Role) String() string {
	switch r {
	case MinorAxis:
		return "minor-axis"
	case MajorAxis:
		return "major-axis"
	case Boundary:
		return "boundary"
	case UnitLine:
		return "unit-line"
	case GeodesicCurve:
		return "geodesic"
	case TracedGeodesic:
		return "traced-geodesic"
	}
	return "unknown"
}

// Colors of the axes and the traced geodesic.
var (
	MajorAxisColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	MinorAxisColor = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	UnitLineColor  = color.RGBA{R: 150, G: 50, B: 50, A: 255}
	TraceColor     = color.RGBA{R: 200, G: 120, B: 200, A: 255}
)

// Stroke is a polyline in screen coordinates.
type Stroke struct {
	Role   Role
	Color  color.RGBA
	Width  float64
	Points []hyperbolic.Point
}

// Drawing is everything a graph shows, in screen coordinates.
type Drawing struct {
	Title   string
	Screen  hyperbolic.Rect
	Clip    *polygon.Polygon // strokes are to be clipped to this region
	Strokes []Stroke
	Bounds  geom.Rect // of all strokes, before clipping
}

// Graph is the view of one model in a screen rectangle.
type Graph struct {
	Kind      Kind
	Screen    hyperbolic.Rect
	Transform transform.Transform // upper half-plane to screen
	disk      transform.Transform
	camera    *camera.Camera
}

// NewGraph creates the view of model k within screen.
func NewGraph(k Kind, screen hyperbolic.Rect, cfg ViewConfig) (*Graph, error) {
	v, err := k.view(screen, cfg)
	if err != nil {
		return nil, err
	}
	return &Graph{
		Kind:      k,
		Screen:    screen,
		Transform: v.transform,
		disk:      v.disk,
		camera:    v.camera,
	}, nil
}

// Title is the caption of the graph.
func (g *Graph) Title() string {
	return g.Kind.Title()
}

// Update moves the pseudosphere camera to the view angles of cfg. The
// graph's transform follows without being rebuilt. Other models do not
// depend on the view angles.
func (g *Graph) Update(cfg ViewConfig) {
	if g.camera != nil {
		g.camera.Orbit(cfg.Horizontal, cfg.Vertical)
	}
}

// Clip returns the region strokes of g are clipped to: the screen
// rectangle, and for disk models the interior of the boundary circle.
func (g *Graph) Clip() *polygon.Polygon {
	clip := polygon.FromRect(g.Screen)
	if g.disk == nil {
		return clip
	}
	circle, err := transform.MapAll(g.disk, hyperbolic.CirclePoints(hyperbolic.UnitCircle, BoundarySamples))
	if err != nil {
		tracer().Errorf("cannot map boundary of %s: %v", g.Kind, err)
		return clip
	}
	return clip.Intersect(polygon.FromPoints(circle))
}

// Draw maps the grid, the axes and all geodesics onto the screen. traced
// is an optional geodesic traced on the pseudosphere, in upper half-plane
// coordinates. Points which cannot be mapped split their polyline.
func (g *Graph) Draw(geodesics []*geodesic.Geodesic, traced []hyperbolic.Point, cfg ViewConfig) (*Drawing, error) {
	d := &Drawing{
		Title:  g.Title(),
		Screen: g.Screen,
		Clip:   g.Clip(),
	}
	add := func(role Role, c color.RGBA, width float64, pts []hyperbolic.Point, tf transform.Transform) {
		for _, piece := range transform.Split(tf, pts) {
			d.Strokes = append(d.Strokes, Stroke{Role: role, Color: c, Width: width, Points: piece})
		}
	}
	switch g.Kind {
	case UpperHalfPlane:
		r := cfg.HalfPlaneRange
		for _, l := range gridLines(r, cfg.GridStep, GridSamples) {
			add(MinorAxis, MinorAxisColor, 1, l, g.Transform)
		}
		xAxis := hyperbolic.LinePoints(hyperbolic.P(r.XMin(), 0), hyperbolic.P(r.XMax(), 0), GridSamples)
		add(MajorAxis, MajorAxisColor, 1, xAxis, g.Transform)
	case PoincareDisk, KleinDisk:
		for _, l := range gridLines(cfg.Range, cfg.GridStep, GridSamples) {
			add(MinorAxis, MinorAxisColor, 1, l, g.Transform)
		}
		add(Boundary, MajorAxisColor, 1, hyperbolic.CirclePoints(hyperbolic.UnitCircle, BoundarySamples), g.disk)
	case Pseudosphere:
		for _, l := range gridLines(cfg.PseudosphereRange, cfg.GridStep, PseudosphereSamples) {
			add(MinorAxis, MinorAxisColor, 1, l, g.Transform)
		}
	}
	r := cfg.Range
	unitLine := hyperbolic.LinePoints(hyperbolic.P(r.XMin(), 1), hyperbolic.P(r.XMax(), 1), UnitLineSamples)
	add(UnitLine, UnitLineColor, 1, unitLine, g.Transform)
	yAxis := hyperbolic.LinePoints(hyperbolic.P(0, r.YMin()), hyperbolic.P(0, r.YMax()), YAxisSamples)
	add(MajorAxis, MajorAxisColor, 1, yAxis, g.Transform)
	for _, geo := range geodesics {
		curve, err := geo.Curve(cfg.GeodesicSamples)
		if err != nil {
			return d, err
		}
		add(GeodesicCurve, geo.Color, 2, curve, g.Transform)
	}
	if len(traced) > 1 {
		add(TracedGeodesic, TraceColor, 2, traced, g.Transform)
	}
	lines := make([][]hyperbolic.Point, len(d.Strokes))
	for i, s := range d.Strokes {
		lines[i] = s.Points
	}
	d.Bounds, _ = hyperbolic.Bounds(lines...)
	tracer().Debugf("%s: %d strokes", g.Kind, len(d.Strokes))
	return d, nil
}

// gridLines returns the horizontal lines of r every step, starting at
// the bottom edge, and the vertical lines every step to the left and
// right of the y-axis, excluding the y-axis itself.
func gridLines(r hyperbolic.Rect, step float64, n int) [][]hyperbolic.Point {
	if !(step > 0) {
		return nil
	}
	var lines [][]hyperbolic.Point
	for i := 0; i <= steps(r.Size.Y, step); i++ {
		y := r.YMin() + float64(i)*step
		lines = append(lines, hyperbolic.LinePoints(hyperbolic.P(r.XMin(), y), hyperbolic.P(r.XMax(), y), n))
	}
	for i := 1; i <= steps(r.XMax(), step); i++ {
		x := float64(i) * step
		lines = append(lines, hyperbolic.LinePoints(hyperbolic.P(x, r.YMin()), hyperbolic.P(x, r.YMax()), n))
	}
	for i := 1; i <= steps(-r.XMin(), step); i++ {
		x := -float64(i) * step
		lines = append(lines, hyperbolic.LinePoints(hyperbolic.P(x, r.YMin()), hyperbolic.P(x, r.YMax()), n))
	}
	return lines
}

// steps is the number of whole steps fitting into length.
func steps(length, step float64) int {
	if length < 0 {
		return -1
	}
	return int(math.Floor(length/step + hyperbolic.Epsilon))
}
