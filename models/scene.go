package models

import (
	"fmt"
	"image/color"
	"math"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/geodesic"
	"github.com/npillmayer/hyperbolic/pseudosphere"
)

// Layout parameters of the views.
const (
	Margin = 40.0 // between views and around them
	Top    = 50.0 // top edge of the views
)

// Layout places one square view per model side by side within a canvas of
// the given size.
func Layout(width, height float64) ([]hyperbolic.Rect, error) {
	n := len(Kinds())
	size := math.Min(height-2*Margin, (width-Margin*float64(n+1))/float64(n))
	if !(size > 0) {
		return nil, fmt.Errorf("%w: canvas %gx%g too small for %d views", hyperbolic.ErrDomain, width, height, n)
	}
	rects := make([]hyperbolic.Rect, n)
	for i := range rects {
		rects[i] = hyperbolic.R(Margin+(Margin+size)*float64(i), Top, size, size)
	}
	return rects, nil
}

// Palette holds the colors of geodesics, used in turn.
var Palette = []color.RGBA{
	{R: 28, G: 63, B: 163, A: 255},
	{R: 47, G: 151, B: 5, A: 255},
	{R: 35, G: 135, B: 196, A: 255},
	{R: 13, G: 178, B: 159, A: 255},
	{R: 88, G: 21, B: 47, A: 255},
	{R: 98, G: 11, B: 77, A: 255},
	{R: 159, G: 160, B: 25, A: 255},
	{R: 98, G: 103, B: 144, A: 255},
	{R: 157, G: 38, B: 199, A: 255},
	{R: 171, G: 37, B: 199, A: 255},
}

// PaletteColor returns the color of the i-th geodesic.
func PaletteColor(i int) color.RGBA {
	return Palette[i%len(Palette)]
}

// DefaultGeodesics are the endpoints of the geodesics of a new scene.
var DefaultGeodesics = [][2]hyperbolic.Point{
	{hyperbolic.P(-6, 1), hyperbolic.P(4, 1)},
	{hyperbolic.P(-1.5, 1), hyperbolic.P(2, 1)},
}

// Scene holds the views of all models and the geodesics shown in them.
type Scene struct {
	Config    ViewConfig
	Graphs    []*Graph
	Geodesics []*geodesic.Geodesic
	traced    []hyperbolic.Point
	traceErr  error
	hasTrace  bool
}

// NewScene lays out all models on a canvas of the given size and adds the
// default geodesics.
func NewScene(width, height float64, cfg ViewConfig) (*Scene, error) {
	rects, err := Layout(width, height)
	if err != nil {
		return nil, err
	}
	s := &Scene{Config: cfg}
	for i, k := range Kinds() {
		g, err := NewGraph(k, rects[i], cfg)
		if err != nil {
			return nil, err
		}
		s.Graphs = append(s.Graphs, g)
	}
	for _, ends := range DefaultGeodesics {
		if _, err := s.AddGeodesic(ends[0], ends[1]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddGeodesic adds a geodesic between a and b, colored from the palette.
func (s *Scene) AddGeodesic(a, b hyperbolic.Point) (*geodesic.Geodesic, error) {
	g, err := geodesic.New(a, b, PaletteColor(len(s.Geodesics)))
	if err != nil {
		return nil, err
	}
	s.Geodesics = append(s.Geodesics, g)
	return g, nil
}

// SetView moves the pseudosphere camera to the slider positions, given
// in percent.
func (s *Scene) SetView(verticalPercent, horizontalPercent float64) {
	s.Config.SetSliders(verticalPercent, horizontalPercent)
	for _, g := range s.Graphs {
		g.Update(s.Config)
	}
}

// Trace returns the geodesic traced on the pseudosphere from the
// configured seeds. The walk is done once and remembered, together with
// the error which may have ended it early.
func (s *Scene) Trace() ([]hyperbolic.Point, error) {
	if !s.hasTrace {
		seeds := s.Config.TraceSeeds
		s.traced, s.traceErr = pseudosphere.Trace(seeds[0], seeds[1], s.Config.TraceMaxPoints)
		s.hasTrace = true
	}
	return s.traced, s.traceErr
}

// Draw produces the drawings of all views, in layout order.
func (s *Scene) Draw() ([]*Drawing, error) {
	var traced []hyperbolic.Point
	if s.Config.ShowTrace {
		var err error
		if traced, err = s.Trace(); err != nil {
			tracer().Errorf("tracing geodesic: %v", err)
		}
	}
	drawings := make([]*Drawing, len(s.Graphs))
	for i, g := range s.Graphs {
		d, err := g.Draw(s.Geodesics, traced, s.Config)
		if err != nil {
			return drawings[:i], err
		}
		drawings[i] = d
	}
	return drawings, nil
}

// Handle identifies a geodesic endpoint under the cursor.
type Handle struct {
	Graph    int // index of the view the endpoint was picked in
	Geodesic int
	Endpoint int // 0 for A, 1 for B
}

// Pick finds the geodesic endpoint closest to a screen point, among all
// endpoints within radius. Only the picked endpoint stays highlighted.
func (s *Scene) Pick(screen hyperbolic.Point, radius float64) (Handle, bool) {
	for gi, g := range s.Graphs {
		if !g.Screen.Contains(screen) {
			continue
		}
		h, found, best := Handle{Graph: gi}, false, radius
		for i, geo := range s.Geodesics {
			if e, d := geo.Nearest(screen, g.Transform, radius); e >= 0 && d <= best {
				h.Geodesic, h.Endpoint, found, best = i, e, true, d
			}
		}
		for i, geo := range s.Geodesics {
			geo.Highlight = [2]bool{}
			if found && i == h.Geodesic {
				geo.Highlight[h.Endpoint] = true
			}
		}
		return h, found
	}
	for _, geo := range s.Geodesics {
		geo.Highlight = [2]bool{}
	}
	return Handle{Graph: -1}, false
}

// Drag moves a picked endpoint to a screen point within the same view.
func (s *Scene) Drag(h Handle, screen hyperbolic.Point) error {
	if h.Graph < 0 || h.Graph >= len(s.Graphs) || h.Geodesic < 0 || h.Geodesic >= len(s.Geodesics) ||
		h.Endpoint < 0 || h.Endpoint > 1 {
		return fmt.Errorf("%w: invalid handle %v", hyperbolic.ErrDomain, h)
	}
	g := s.Graphs[h.Graph]
	return s.Geodesics[h.Geodesic].MoveEndpoint(h.Endpoint, screen, g.Transform)
}
