package field_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/superfield/internal/field"
)

type recordingSurface struct {
	calls   int
	x, y, z field.Grid
}

func (s *recordingSurface) SetOffsets3D(x, y, z field.Grid) {
	s.calls++
	s.x, s.y, s.z = x, y, z
}

func defaultGrid() (field.Grid, field.Grid) {
	return field.Meshgrid(field.Linspace(-5, 5, 100), field.Linspace(-1, 1, 100))
}

var _ = Describe("Curvature", func() {
	var x, theta field.Grid

	BeforeEach(func() {
		x, theta = defaultGrid()
	})

	It("keeps the grid shape", func() {
		for _, t := range []float64{0, 1, 37.5, -12} {
			c, err := field.Curvature(x, theta, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Rows).To(Equal(100))
			Expect(c.Cols).To(Equal(100))
		}
	})

	It("drops the time term at t=0", func() {
		c, err := field.Curvature(x, theta, 0)
		Expect(err).NotTo(HaveOccurred())
		for i := range c.Data {
			want := math.Sin(x.Data[i]/2) * math.Cos(theta.Data[i]*math.Pi)
			Expect(c.Data[i]).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("is periodic in time with period 20pi", func() {
		for _, t := range []float64{0, 3, 17.25, 99} {
			a, err := field.Curvature(x, theta, t)
			Expect(err).NotTo(HaveOccurred())
			b, err := field.Curvature(x, theta, t+20*math.Pi)
			Expect(err).NotTo(HaveOccurred())
			for i := range a.Data {
				Expect(b.Data[i]).To(BeNumerically("~", a.Data[i], 1e-9))
			}
		}
	})

	It("propagates NaN without failing", func() {
		nx := field.FromRows([][]float64{{math.NaN(), 1}})
		nt := field.FromRows([][]float64{{0, 0}})
		c, err := field.Curvature(nx, nt, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(c.Data[0])).To(BeTrue())
		Expect(c.Data[1]).To(BeNumerically("~", math.Sin(0.5), 1e-12))
	})

	It("rejects grids of different shape", func() {
		_, err := field.Curvature(x, field.NewGrid(3, 4), 0)
		Expect(errors.Is(err, field.ErrShapeMismatch)).To(BeTrue())
		var se *field.ShapeError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Got).To(Equal([2]int{3, 4}))
	})
})

var _ = Describe("UpdateFrame", func() {
	var (
		x, theta, re, im field.Grid
		reSurf, imSurf   *recordingSurface
		ctx              *field.FrameContext
	)

	BeforeEach(func() {
		x, theta = defaultGrid()
		re, im = field.BaseFields(x)
		reSurf, imSurf = &recordingSurface{}, &recordingSurface{}
		var err error
		ctx, err = field.NewFrameContext(x, theta, re, im, reSurf, imSurf)
		Expect(err).NotTo(HaveOccurred())
	})

	It("zeroes both surfaces at frame 0", func() {
		handles, err := field.UpdateFrame(0, ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(handles).To(HaveLen(2))
		for _, s := range []*recordingSurface{reSurf, imSurf} {
			Expect(s.calls).To(Equal(1))
			Expect(s.z.Rows).To(Equal(100))
			Expect(s.z.Cols).To(Equal(100))
			for _, v := range s.z.Data {
				Expect(v).To(BeZero())
			}
		}
	})

	It("passes the coordinate grids through", func() {
		_, err := field.UpdateFrame(5, ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(reSurf.x.Data).To(Equal(x.Data))
		Expect(reSurf.y.Data).To(Equal(theta.Data))
		Expect(imSurf.x.Data).To(Equal(x.Data))
		Expect(imSurf.y.Data).To(Equal(theta.Data))
	})

	It("leaves its inputs untouched", func() {
		sx, st, sr, si := x.Clone(), theta.Clone(), re.Clone(), im.Clone()
		for _, f := range []int{0, 7, 42, 99} {
			_, err := field.UpdateFrame(f, ctx)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(x.Data).To(Equal(sx.Data))
		Expect(theta.Data).To(Equal(st.Data))
		Expect(re.Data).To(Equal(sr.Data))
		Expect(im.Data).To(Equal(si.Data))
	})

	It("is deterministic for a given frame", func() {
		_, err := field.UpdateFrame(33, ctx)
		Expect(err).NotTo(HaveOccurred())
		first := reSurf.z.Clone()
		firstIm := imSurf.z.Clone()
		_, err = field.UpdateFrame(80, ctx)
		Expect(err).NotTo(HaveOccurred())
		_, err = field.UpdateFrame(33, ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(reSurf.z.Data).To(Equal(first.Data))
		Expect(imSurf.z.Data).To(Equal(firstIm.Data))
	})

	It("matches the single point regression at frame 10", func() {
		one := &recordingSurface{}
		other := &recordingSurface{}
		px := field.FromRows([][]float64{{1.0}})
		pt := field.FromRows([][]float64{{0.5}})
		pr := field.FromRows([][]float64{{1.0}})
		pi := field.FromRows([][]float64{{1.0}})
		c, err := field.NewFrameContext(px, pt, pr, pi, one, other)
		Expect(err).NotTo(HaveOccurred())

		_, err = field.UpdateFrame(10, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(one.z.Data[0]).To(BeNumerically("~", 0.8415, 1e-3))
		Expect(other.z.Data[0]).To(BeNumerically("~", 0, 1e-3))
	})
})

var _ = Describe("NewFrameContext", func() {
	It("rejects mismatched base fields", func() {
		x, theta := defaultGrid()
		_, err := field.NewFrameContext(x, theta, field.NewGrid(2, 2), x, &recordingSurface{}, &recordingSurface{})
		Expect(err).To(MatchError(field.ErrShapeMismatch))
	})

	It("requires both surfaces", func() {
		x, theta := defaultGrid()
		re, im := field.BaseFields(x)
		_, err := field.NewFrameContext(x, theta, re, im, &recordingSurface{}, nil)
		Expect(err).To(HaveOccurred())
	})
})
