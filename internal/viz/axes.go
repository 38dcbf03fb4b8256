package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/superfield/internal/field"
)

var panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// Axes3D is one 3D plot panel holding a single surface.
type Axes3D struct {
	Title                  string
	XLabel, YLabel, ZLabel string
	Surface                *Surface
	Camera                 *Camera
	// Profile adds a line plot of the surface's middle row under the view.
	Profile bool

	canvas *Canvas
	view   string
	draws  int
}

// NewAxes3D creates a panel whose plot area is w by h braille cells.
func NewAxes3D(title string, w, h int, cam *Camera) *Axes3D {
	return &Axes3D{Title: title, Camera: cam, canvas: NewCanvas(w, h)}
}

func (a *Axes3D) SetLabels(x, y, z string) {
	a.XLabel, a.YLabel, a.ZLabel = x, y, z
}

func (a *Axes3D) owns(s field.Surface) bool {
	return a.Surface != nil && s == field.Surface(a.Surface)
}

// Draw rasterizes the panel and caches the result for View.
func (a *Axes3D) Draw(th Theme) {
	a.canvas.Clear()
	Render3D(a.canvas, CreatePanesWireframe(a.Camera), a.Camera)

	var cmap *Colormap
	var zl Limits
	if a.Surface != nil {
		a.Surface.draw(a.canvas, a.Camera)
		cmap = a.Surface.Cmap
		_, _, zl = a.Surface.Limits()
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Secondary)
	labelStyle := lipgloss.NewStyle().Foreground(th.Muted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title) + "\n")
	b.WriteString(a.canvas.Render(cmap, zl.Lo, zl.Hi, th.Muted) + "\n")
	b.WriteString(labelStyle.Render(a.axisLine()))
	if a.Profile && a.Surface != nil {
		if g := a.profile(zl, th); g != "" {
			b.WriteString("\n" + g)
		}
	}
	a.view = panelStyle.BorderForeground(th.Primary).Render(b.String())
	a.draws++
}

func (a *Axes3D) axisLine() string {
	if a.Surface == nil {
		return fmt.Sprintf("x: %s  y: %s  z: %s", a.XLabel, a.YLabel, a.ZLabel)
	}
	xl, yl, zl := a.Surface.Limits()
	return fmt.Sprintf("x: %s [%.3g, %.3g]\ny: %s [%.3g, %.3g]\nz: %s [%.3g, %.3g]",
		a.XLabel, xl.Lo, xl.Hi, a.YLabel, yl.Lo, yl.Hi, a.ZLabel, zl.Lo, zl.Hi)
}

func (a *Axes3D) profile(zl Limits, th Theme) string {
	_, _, z := a.Surface.Offsets3D()
	if z.Rows == 0 || z.Cols < 2 {
		return ""
	}
	w := a.canvas.Width - 10
	if w < 10 {
		w = 10
	}
	chart := asciigraph.Plot(z.Row(z.Rows/2),
		asciigraph.Height(4),
		asciigraph.Width(w),
		asciigraph.LowerBound(zl.Lo),
		asciigraph.UpperBound(zl.Hi),
		asciigraph.Precision(2),
		asciigraph.Caption(a.ZLabel+" along x, middle row"))
	return lipgloss.NewStyle().Foreground(th.Accent).Render(chart)
}

// View returns the last drawn panel.
func (a *Axes3D) View() string { return a.view }

// Draws counts how often the panel has been rasterized.
func (a *Axes3D) Draws() int { return a.draws }

// Figure lays panels out side by side.
type Figure struct {
	Axes  []*Axes3D
	Theme Theme
}

// Draw redraws the panels holding any of changed, or every panel when
// changed is nil.
func (f *Figure) Draw(changed []field.Surface) {
	for _, ax := range f.Axes {
		if changed == nil || ax.view == "" {
			ax.Draw(f.Theme)
			continue
		}
		for _, s := range changed {
			if ax.owns(s) {
				ax.Draw(f.Theme)
				break
			}
		}
	}
}

func (f *Figure) View() string {
	views := make([]string, len(f.Axes))
	for i, ax := range f.Axes {
		views[i] = ax.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
