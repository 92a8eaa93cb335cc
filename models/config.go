package models

import (
	"math"

	"github.com/npillmayer/hyperbolic"
)

// ViewConfig holds the parameters shared by all model views.
type ViewConfig struct {
	Horizontal float64 // horizontal view angle of the pseudosphere camera, in radians
	Vertical   float64 // height of the pseudosphere camera

	Range             hyperbolic.Rect // upper half-plane range drawn by the disk models
	HalfPlaneRange    hyperbolic.Rect // range drawn by the upper half-plane view
	PseudosphereRange hyperbolic.Rect // range drawn on the pseudosphere
	GridStep          float64         // distance of minor grid lines

	LookAt hyperbolic.Point // pseudosphere camera target
	Up     hyperbolic.Point // pseudosphere camera up vector
	Focal  float64          // pseudosphere camera focal length, in screen units

	GeodesicSamples int // points per geodesic curve

	ShowTrace      bool                // draw a geodesic traced on the pseudosphere
	TraceSeeds     [2]hyperbolic.Point // start of the traced geodesic
	TraceMaxPoints int
}

// Sample counts of the strokes of a drawing.
const (
	GridSamples         = 200
	PseudosphereSamples = 500
	UnitLineSamples     = 500
	YAxisSamples        = 700
	BoundarySamples     = 200
)

// DefaultViewConfig returns the configuration of the initial views.
func DefaultViewConfig() ViewConfig {
	cfg := ViewConfig{
		Range:             hyperbolic.R(-20, 0, 40, 40),
		HalfPlaneRange:    hyperbolic.R(-7.5, 0, 15, 15),
		PseudosphereRange: hyperbolic.R(-math.Pi, 1, 2*math.Pi, 60),
		GridStep:          0.5,
		LookAt:            hyperbolic.P3(0, 0, 0.7),
		Up:                hyperbolic.P3(0, 0, 1),
		Focal:             1500,
		GeodesicSamples:   3000,
		TraceSeeds:        [2]hyperbolic.Point{hyperbolic.P(-1, 5.1), hyperbolic.P(-0.99, 5.1)},
		TraceMaxPoints:    2000,
	}
	cfg.SetSliders(25, 10)
	return cfg
}

// FromSliders converts slider positions, in percent, to the camera's
// height and horizontal view angle.
func FromSliders(verticalPercent, horizontalPercent float64) (vertical, horizontal float64) {
	vertical = 20 - 40*verticalPercent/100
	horizontal = 2 * math.Pi * horizontalPercent / 100
	return
}

// SetSliders sets the view angles from slider positions, see FromSliders.
func (cfg *ViewConfig) SetSliders(verticalPercent, horizontalPercent float64) {
	cfg.Vertical, cfg.Horizontal = FromSliders(verticalPercent, horizontalPercent)
}
