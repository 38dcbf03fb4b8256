package viz

import "github.com/san-kum/superfield/internal/field"

// Limits is a closed data interval for one axis.
type Limits struct{ Lo, Hi float64 }

func limitsOf(g field.Grid) Limits {
	lo, hi := g.Bounds()
	if hi <= lo {
		lo, hi = lo-0.5, hi+0.5
	}
	return Limits{lo, hi}
}

// toBox maps v from the limits onto [-1, 1].
func (l Limits) toBox(v float64) float64 {
	return 2*(v-l.Lo)/(l.Hi-l.Lo) - 1
}

// Surface is a point cloud drawn in an Axes3D. Axis limits are fixed when
// the surface is created; later coordinate updates are drawn inside them.
type Surface struct {
	Cmap    *Colormap
	x, y, z field.Grid
	xl, yl  Limits
	zl      Limits
	updates int
}

// NewSurface creates a surface from its initial coordinates.
func NewSurface(x, y, z field.Grid, cmap *Colormap) *Surface {
	s := &Surface{Cmap: cmap, x: x, y: y, z: z}
	s.xl, s.yl, s.zl = limitsOf(x), limitsOf(y), limitsOf(z)
	return s
}

// SetOffsets3D replaces the displayed coordinates.
func (s *Surface) SetOffsets3D(x, y, z field.Grid) {
	s.x, s.y, s.z = x, y, z
	s.updates++
}

func (s *Surface) Offsets3D() (x, y, z field.Grid) { return s.x, s.y, s.z }

func (s *Surface) Limits() (x, y, z Limits) { return s.xl, s.yl, s.zl }

// Updates counts SetOffsets3D calls.
func (s *Surface) Updates() int { return s.updates }

// draw plots every point whose coordinates all exist onto c.
func (s *Surface) draw(c *Canvas, cam *Camera) {
	n := s.z.Len()
	if s.x.Len() < n {
		n = s.x.Len()
	}
	if s.y.Len() < n {
		n = s.y.Len()
	}
	cw, ch := c.Width*2, c.Height*4
	for i := 0; i < n; i++ {
		zv := s.z.Data[i]
		p := Vec3{s.xl.toBox(s.x.Data[i]), s.yl.toBox(s.y.Data[i]), s.zl.toBox(zv)}
		if sx, sy, _, ok := cam.Project(p, cw, ch); ok {
			c.Plot(sx, sy, zv)
		}
	}
}
