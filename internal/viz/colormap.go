package viz

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Colormap maps [0, 1] to a colour by linear interpolation between stops.
type Colormap struct {
	Name  string
	stops []string
}

var colormaps = map[string]*Colormap{
	"viridis": {Name: "viridis", stops: []string{"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}},
	"inferno": {Name: "inferno", stops: []string{"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"}},
	"plasma":  {Name: "plasma", stops: []string{"#0d0887", "#47039f", "#7301a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fa9f3a", "#fdc926", "#f0f921"}},
	"magma":   {Name: "magma", stops: []string{"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"}},
	"gray":    {Name: "gray", stops: []string{"#000000", "#ffffff"}},
}

// GetColormap looks a colormap up by name.
func GetColormap(name string) (*Colormap, error) {
	if c, ok := colormaps[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown colormap %q (available: %v)", name, ColormapNames())
}

func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for n := range colormaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// At returns the colour for t, clamped to [0, 1]. NaN maps to the low end.
func (c *Colormap) At(t float64) lipgloss.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if len(c.stops) == 1 {
		return lipgloss.Color(c.stops[0])
	}
	pos := t * float64(len(c.stops)-1)
	i := int(pos)
	if i >= len(c.stops)-1 {
		return lipgloss.Color(c.stops[len(c.stops)-1])
	}
	frac := pos - float64(i)
	sr, sg, sb := parseHex(c.stops[i])
	er, eg, eb := parseHex(c.stops[i+1])
	r := int(math.Round(float64(sr) + frac*float64(er-sr)))
	g := int(math.Round(float64(sg) + frac*float64(eg-sg)))
	b := int(math.Round(float64(sb) + frac*float64(eb-sb)))
	return lipgloss.Color(hexColor(r, g, b))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
