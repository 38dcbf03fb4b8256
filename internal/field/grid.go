package field

// Grid is a dense row-major 2D array of samples.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

func NewGrid(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows builds a grid from nested slices. Short rows are zero padded.
func FromRows(rows [][]float64) Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(len(rows), cols)
	for i, r := range rows {
		copy(g.Data[i*cols:], r)
	}
	return g
}

func (g Grid) At(i, j int) float64     { return g.Data[i*g.Cols+j] }
func (g Grid) Set(i, j int, v float64) { g.Data[i*g.Cols+j] = v }
func (g Grid) Shape() (int, int)       { return g.Rows, g.Cols }
func (g Grid) Len() int                { return len(g.Data) }

func (g Grid) SameShape(o Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

func (g Grid) Clone() Grid {
	c := Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(c.Data, g.Data)
	return c
}

// Row returns a copy of row i.
func (g Grid) Row(i int) []float64 {
	r := make([]float64, g.Cols)
	copy(r, g.Data[i*g.Cols:(i+1)*g.Cols])
	return r
}

// Map applies f elementwise into a new grid.
func (g Grid) Map(f func(float64) float64) Grid {
	out := NewGrid(g.Rows, g.Cols)
	for i, v := range g.Data {
		out.Data[i] = f(v)
	}
	return out
}

// Bounds returns the minimum and maximum finite values. An empty or
// all-NaN grid reports (0, 0).
func (g Grid) Bounds() (lo, hi float64) {
	first := true
	for _, v := range g.Data {
		if v != v {
			continue
		}
		if first {
			lo, hi, first = v, v, false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Linspace returns n evenly spaced samples over [start, stop], endpoints
// included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Meshgrid expands two axes into coordinate grids using the xy convention:
// X[i][j] = x[j] and Y[i][j] = y[i]. Both grids are len(y) by len(x).
func Meshgrid(x, y []float64) (Grid, Grid) {
	gx, gy := NewGrid(len(y), len(x)), NewGrid(len(y), len(x))
	for i := range y {
		for j := range x {
			gx.Set(i, j, x[j])
			gy.Set(i, j, y[i])
		}
	}
	return gx, gy
}
