package field

import (
	"errors"
	"math"
)

// Surface is a rendered surface whose displayed points can be replaced.
type Surface interface {
	SetOffsets3D(x, y, z Grid)
}

// FrameContext holds everything the frame callback reads. Nothing in it is
// written after construction.
type FrameContext struct {
	X, Theta     Grid
	RePhi, ImPhi Grid
	Real, Imag   Surface
}

// NewFrameContext checks that all grids share the shape of x.
func NewFrameContext(x, theta, re, im Grid, reSurf, imSurf Surface) (*FrameContext, error) {
	for _, g := range []struct {
		name string
		grid Grid
	}{{"theta", theta}, {"re", re}, {"im", im}} {
		if err := checkShape("frame context "+g.name, x, g.grid); err != nil {
			return nil, err
		}
	}
	if reSurf == nil || imSurf == nil {
		return nil, errors.New("field: frame context needs two surfaces")
	}
	return &FrameContext{X: x, Theta: theta, RePhi: re, ImPhi: im, Real: reSurf, Imag: imSurf}, nil
}

// Factor is the per-frame amplitude sin(frame/10).
func Factor(frame int) float64 {
	return math.Sin(float64(frame) / 10)
}

// ComputeFrame derives the displayed real and imaginary values for a frame
// from the untouched base fields.
func ComputeFrame(frame int, ctx *FrameContext) (re, im Grid, err error) {
	factor := Factor(frame)
	curv, err := Curvature(ctx.X, ctx.Theta, float64(frame))
	if err != nil {
		return Grid{}, Grid{}, err
	}
	if err := checkShape("compute frame", curv, ctx.RePhi); err != nil {
		return Grid{}, Grid{}, err
	}
	if err := checkShape("compute frame", curv, ctx.ImPhi); err != nil {
		return Grid{}, Grid{}, err
	}
	re, im = NewGrid(curv.Rows, curv.Cols), NewGrid(curv.Rows, curv.Cols)
	for i, c := range curv.Data {
		re.Data[i] = ctx.RePhi.Data[i] * math.Cos(c) * factor
		im.Data[i] = ctx.ImPhi.Data[i] * math.Sin(c) * factor
	}
	return re, im, nil
}

// UpdateFrame pushes the values for frame into both surfaces and returns
// them so the driver knows what changed.
func UpdateFrame(frame int, ctx *FrameContext) ([]Surface, error) {
	re, im, err := ComputeFrame(frame, ctx)
	if err != nil {
		return nil, err
	}
	ctx.Real.SetOffsets3D(ctx.X, ctx.Theta, re)
	ctx.Imag.SetOffsets3D(ctx.X, ctx.Theta, im)
	return []Surface{ctx.Real, ctx.Imag}, nil
}
