// Package scene assembles the superfield figure and its animation from a
// configuration.
package scene

import (
	"fmt"

	"github.com/san-kum/superfield/internal/anim"
	"github.com/san-kum/superfield/internal/config"
	"github.com/san-kum/superfield/internal/field"
	"github.com/san-kum/superfield/internal/viz"
)

const (
	Title      = "superfield"
	RealTitle  = "Real Part of Superfield (Bosonic)"
	ImagTitle  = "Imaginary Part of Superfield (Fermionic)"
	XLabel     = "Bosonic Coordinate (x)"
	ThetaLabel = "Grassmann Component (θ)"
	RealZLabel = "Re(Φ)"
	ImagZLabel = "Im(Φ)"
)

type Scene struct {
	Figure    *viz.Figure
	Animation *anim.Animation
	Context   *field.FrameContext
	Real      *viz.Surface
	Imag      *viz.Surface
}

func New(cfg *config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := viz.GetTheme(cfg.View.Theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	reCmap, err := viz.GetColormap(cfg.View.RealCmap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	imCmap, err := viz.GetColormap(cfg.View.ImagCmap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	g := cfg.Grid
	x, theta := field.Meshgrid(
		field.Linspace(g.X.Min, g.X.Max, g.X.Samples),
		field.Linspace(g.Theta.Min, g.Theta.Max, g.Theta.Samples),
	)
	re, im := field.BaseFields(x)

	reSurf := viz.NewSurface(x, theta, re, reCmap)
	imSurf := viz.NewSurface(x, theta, im, imCmap)
	ctx, err := field.NewFrameContext(x, theta, re, im, reSurf, imSurf)
	if err != nil {
		return nil, err
	}

	v := cfg.View
	left := viz.NewAxes3D(RealTitle, v.PanelWidth, v.PanelHeight, viz.NewCamera(v.ElevationDeg, v.AzimuthDeg))
	left.SetLabels(XLabel, ThetaLabel, RealZLabel)
	left.Surface, left.Profile = reSurf, v.Profile
	right := viz.NewAxes3D(ImagTitle, v.PanelWidth, v.PanelHeight, viz.NewCamera(v.ElevationDeg, v.AzimuthDeg))
	right.SetLabels(XLabel, ThetaLabel, ImagZLabel)
	right.Surface, right.Profile = imSurf, v.Profile

	an := cfg.Animation
	a := &anim.Animation{
		Frames:   anim.Frames(an.Start, an.Stop, an.Step),
		Interval: cfg.Interval(),
		Blit:     an.Blit,
		Repeat:   an.Repeat,
		Update: func(frame int) ([]field.Surface, error) {
			return field.UpdateFrame(frame, ctx)
		},
	}

	return &Scene{
		Figure:    &viz.Figure{Axes: []*viz.Axes3D{left, right}, Theme: theme},
		Animation: a,
		Context:   ctx,
		Real:      reSurf,
		Imag:      imSurf,
	}, nil
}

func (s *Scene) Model() viz.Model {
	return viz.NewModel(Title, s.Figure, s.Animation)
}
