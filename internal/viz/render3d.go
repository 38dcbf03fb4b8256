package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Camera looks at the unit box [-1, 1]^3 from a z-up orbit given by
// elevation and azimuth in radians.
type Camera struct {
	Elev, Azim float64
	Dist, Near float64
	Zoom       float64
}

func NewCamera(elevDeg, azimDeg float64) *Camera {
	return &Camera{Elev: elevDeg * math.Pi / 180, Azim: azimDeg * math.Pi / 180, Dist: 10, Near: 0.1, Zoom: 1.0}
}

// basis returns the screen right, screen up and toward-viewer vectors.
func (c *Camera) basis() (right, up, view Vec3) {
	se, ce := math.Sincos(c.Elev)
	sa, ca := math.Sincos(c.Azim)
	right = Vec3{-sa, ca, 0}
	up = Vec3{-se * ca, -se * sa, ce}
	view = Vec3{ce * ca, ce * sa, se}
	return
}

// Project converts box coordinates to screen coordinates.
// Returns x, y, depth, and visibility. Larger depth is nearer the viewer.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	right, up, view := c.basis()
	p = p.Scale(c.Zoom)
	depth := p.Dot(view)
	if depth >= c.Dist-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Dist / (c.Dist - depth)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.6
	sx := int(math.Round(p.Dot(right)*scale*pScale)) + sw/2
	sy := int(math.Round(-p.Dot(up)*scale*pScale)) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

type projectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
}

// CreatePanesWireframe outlines the three back panes of the axes box as
// seen from cam, the way a 3D axes draws its floor and walls.
func CreatePanesWireframe(cam *Camera) *Wireframe {
	_, _, view := cam.basis()
	bx, by := -1.0, -1.0
	if view.X < 0 {
		bx = 1
	}
	if view.Y < 0 {
		by = 1
	}
	w := NewWireframe()
	floor := []Vec3{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}}
	for i := range floor {
		w.AddEdge(floor[i], floor[(i+1)%len(floor)])
	}
	w.AddEdge(Vec3{bx, -1, 1}, Vec3{bx, 1, 1})
	w.AddEdge(Vec3{-1, by, 1}, Vec3{1, by, 1})
	w.AddEdge(Vec3{bx, by, -1}, Vec3{bx, by, 1})
	w.AddEdge(Vec3{bx, -by, -1}, Vec3{bx, -by, 1})
	w.AddEdge(Vec3{-bx, by, -1}, Vec3{-bx, by, 1})
	return w
}
