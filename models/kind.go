/*
Package models builds the four linked views of the hyperbolic plane: the
upper half-plane, the Poincaré disk, the pseudosphere and the Klein disk.

Every view is a Graph, holding a transform from upper half-plane
coordinates to screen coordinates. Graphs produce Drawings, i.e. lists of
polylines in screen coordinates together with their role and color. Pixel
rendering is left to the client.

A Scene bundles the four graphs with the geodesics shown in all of them.
*/
package models

import (
	"fmt"

	"github.com/npillmayer/hyperbolic"
	"github.com/npillmayer/hyperbolic/camera"
	"github.com/npillmayer/hyperbolic/geodesic"
	"github.com/npillmayer/hyperbolic/pseudosphere"
	"github.com/npillmayer/hyperbolic/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyperbolic.models'
func tracer() tracing.Trace {
	return tracing.Select("hyperbolic.models")
}

// Kind is a model of the hyperbolic plane.
type Kind int

// Models of the hyperbolic plane, in the order they are laid out.
const (
	UpperHalfPlane Kind = iota
	PoincareDisk
	Pseudosphere
	KleinDisk
)

// Kinds lists all models in layout order.
func Kinds() []Kind {
	return []Kind{UpperHalfPlane, PoincareDisk, Pseudosphere, KleinDisk}
}

func (k Kind) String() string {
	switch k {
	case UpperHalfPlane:
		return "upper-half-plane"
	case PoincareDisk:
		return "poincare-disk"
	case Pseudosphere:
		return "pseudosphere"
	case KleinDisk:
		return "klein-disk"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Title is the caption of a model's view.
func (k Kind) Title() string {
	switch k {
	case UpperHalfPlane:
		return "Upper half-plane"
	case PoincareDisk:
		return "Poincaré disk model"
	case Pseudosphere:
		return "Pseudosphere"
	case KleinDisk:
		return "Klein disk model"
	}
	return k.String()
}

// IsDisk is a predicate: is k bounded by the unit circle?
func (k Kind) IsDisk() bool {
	return k == PoincareDisk || k == KleinDisk
}

// Circles of the disk models which are fitted into the screen rect.
var (
	poincareOfInterest = hyperbolic.Circle{Center: hyperbolic.P(0, -0.5), R: 0.6}
	kleinOfInterest    = hyperbolic.Circle{Center: hyperbolic.P(0, -0.5), R: 0.8}
)

// Transform returns the transform from upper half-plane coordinates to
// screen coordinates within screen. The pseudosphere's transform is
// forward-only.
func (k Kind) Transform(screen hyperbolic.Rect, cfg ViewConfig) (transform.Transform, error) {
	v, err := k.view(screen, cfg)
	if err != nil {
		return nil, err
	}
	return v.transform, nil
}

// view holds the transforms of a model.
type view struct {
	transform transform.Transform
	disk      transform.Transform // disk models only: unit disk to screen
	camera    *camera.Camera      // pseudosphere only
}

func (k Kind) view(screen hyperbolic.Rect, cfg ViewConfig) (view, error) {
	inversion := transform.CircleInversion(geodesic.InversionCircle)
	switch k {
	case UpperHalfPlane:
		toScreen, err := transform.Linear(cfg.HalfPlaneRange, screen)
		if err != nil {
			return view{}, err
		}
		return view{
			transform: transform.Compose(transform.FlipYWithin(cfg.HalfPlaneRange), toScreen),
		}, nil
	case PoincareDisk:
		toScreen, err := transform.Linear(poincareOfInterest.Rect(), screen)
		if err != nil {
			return view{}, err
		}
		return view{
			transform: transform.Compose(inversion, toScreen),
			disk:      toScreen,
		}, nil
	case Pseudosphere:
		eye := camera.OrbitPosition(cfg.Horizontal, cfg.Vertical)
		cam, err := camera.New(eye, cfg.LookAt, cfg.Up, cfg.Focal, screen.Center())
		if err != nil {
			return view{}, err
		}
		return view{
			transform: transform.Compose(transform.FlipX(), pseudosphere.Transform(), cam.Transform()),
			camera:    cam,
		}, nil
	case KleinDisk:
		toScreen, err := transform.Linear(kleinOfInterest.Rect(), screen)
		if err != nil {
			return view{}, err
		}
		return view{
			transform: transform.Compose(inversion, transform.PoincareToKlein(hyperbolic.UnitCircle), toScreen),
			disk:      toScreen,
		}, nil
	}
	return view{}, fmt.Errorf("%w: unknown model %s", hyperbolic.ErrDomain, k)
}
