package field

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(-5, 5, 100)
	if len(xs) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(xs))
	}
	if xs[0] != -5 || xs[99] != 5 {
		t.Errorf("endpoints: got %f, %f", xs[0], xs[99])
	}
	step := 10.0 / 99
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; math.Abs(d-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %g", i, d)
		}
	}
}

func TestLinspaceEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"single", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Linspace(0, 1, tt.n)); got != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, got)
			}
		})
	}
}

func TestMeshgrid(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20}
	gx, gy := Meshgrid(x, y)

	if gx.Rows != 2 || gx.Cols != 3 || !gx.SameShape(gy) {
		t.Fatalf("unexpected shapes %dx%d and %dx%d", gx.Rows, gx.Cols, gy.Rows, gy.Cols)
	}
	for i := range y {
		for j := range x {
			if gx.At(i, j) != x[j] {
				t.Errorf("X[%d][%d] = %f, want %f", i, j, gx.At(i, j), x[j])
			}
			if gy.At(i, j) != y[i] {
				t.Errorf("Y[%d][%d] = %f, want %f", i, j, gy.At(i, j), y[i])
			}
		}
	}
}

func TestBaseFields(t *testing.T) {
	x, _ := Meshgrid(Linspace(-5, 5, 7), Linspace(-1, 1, 4))
	re, im := BaseFields(x)
	for i, v := range x.Data {
		if re.Data[i] != math.Sin(v) || im.Data[i] != math.Cos(v) {
			t.Fatalf("base field mismatch at %d", i)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := FromRows([][]float64{{3, math.NaN()}, {-2, 7}})
	lo, hi := g.Bounds()
	if lo != -2 || hi != 7 {
		t.Errorf("expected (-2, 7), got (%f, %f)", lo, hi)
	}

	lo, hi = NewGrid(0, 0).Bounds()
	if lo != 0 || hi != 0 {
		t.Errorf("empty grid bounds should be zero, got (%f, %f)", lo, hi)
	}
}

func TestFromRowsPadsShortRows(t *testing.T) {
	g := FromRows([][]float64{{1, 2, 3}, {4}})
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("unexpected shape %dx%d", g.Rows, g.Cols)
	}
	if g.At(1, 0) != 4 || g.At(1, 2) != 0 {
		t.Errorf("unexpected second row %v", g.Row(1))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := FromRows([][]float64{{1, 2}})
	c := g.Clone()
	c.Set(0, 0, 9)
	if g.At(0, 0) != 1 {
		t.Error("clone shares storage with original")
	}
}
