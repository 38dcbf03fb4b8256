package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot canvas. Each cell can also carry the mean of the
// values plotted into it, which Render maps through a colormap.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	sum           [][]float64
	count         [][]int
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		sum:    make([][]float64, h),
		count:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.sum[i] = make([]float64, w)
		c.count[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// cell maps sub-pixel coordinates to a cell and dot mask. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) cell(x, y int) (row, col int, mask rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, rune(pixelMap[y%4][x%2]), true
}

// Set lights the dot at sub-pixel (x, y).
func (c *Canvas) Set(x, y int) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= mask
	}
}

// Plot lights the dot at (x, y) and records v for the cell colour.
// NaN values light nothing.
func (c *Canvas) Plot(x, y int, v float64) {
	if math.IsNaN(v) {
		return
	}
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= mask
		c.sum[row][col] += v
		c.count[row][col]++
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= mask
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.sum[i][j] = 0
			c.count[i][j] = 0
		}
	}
}

// Value returns the mean plotted value of a cell.
func (c *Canvas) Value(row, col int) (float64, bool) {
	if row < 0 || col < 0 || row >= c.Height || col >= c.Width || c.count[row][col] == 0 {
		return 0, false
	}
	return c.sum[row][col] / float64(c.count[row][col]), true
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with valued cells coloured by cmap over
// [lo, hi] and all other lit cells in line.
func (c *Canvas) Render(cmap *Colormap, lo, hi float64, line lipgloss.Color) string {
	lineStyle := lipgloss.NewStyle().Foreground(line)
	styles := make(map[lipgloss.Color]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if r == brailleBlank {
				b.WriteRune(r)
				continue
			}
			v, ok := c.Value(i, j)
			if !ok || cmap == nil {
				b.WriteString(lineStyle.Render(string(r)))
				continue
			}
			col := cmap.At(normalize(v, lo, hi))
			st, seen := styles[col]
			if !seen {
				st = lipgloss.NewStyle().Foreground(col)
				styles[col] = st
			}
			b.WriteString(st.Render(string(r)))
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
