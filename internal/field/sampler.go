// Package field computes the superfield surfaces shown by the animation.
package field

import "math"

// Curvature samples the synthetic curvature
//
//	sin(x/2) * cos(theta*pi) * cos(t/10)
//
// at every grid point. The time term is shared by the whole grid. Non-finite
// inputs propagate through the trigonometry and are not reported.
func Curvature(x, theta Grid, t float64) (Grid, error) {
	if err := checkShape("curvature", x, theta); err != nil {
		return Grid{}, err
	}
	tt := math.Cos(t / 10)
	out := NewGrid(x.Rows, x.Cols)
	for i, xv := range x.Data {
		out.Data[i] = math.Sin(xv/2) * math.Cos(theta.Data[i]*math.Pi) * tt
	}
	return out, nil
}

// BaseFields returns the initial real and imaginary components,
// sin(X) and cos(X).
func BaseFields(x Grid) (re, im Grid) {
	return x.Map(math.Sin), x.Map(math.Cos)
}
