package render

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/weather-scene/vmath"
)

// Paint yields a color for a point in user (layout pixel) space
type Paint interface {
	At(x, y float64) Color
}

// ColorStop positions a color along a gradient, offset in [0,1]
type ColorStop struct {
	Offset float64
	Color  Color
}

type gradient struct {
	stops []ColorStop
}

// AddColorStop inserts a stop keeping offsets ordered, equal offsets keep insertion order
func (g *gradient) AddColorStop(offset float64, c Color) {
	offset = vmath.Clamp(offset, 0, 1)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
}

// colorAt samples the ramp, t outside [0,1] pads with the end stops
func (g *gradient) colorAt(t float64) Color {
	n := len(g.stops)
	if n == 0 {
		return Color{}
	}
	if math.IsNaN(t) || t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	if t >= g.stops[n-1].Offset {
		return g.stops[n-1].Color
	}

	i := sort.Search(n, func(i int) bool { return g.stops[i].Offset > t })
	a, b := g.stops[i-1], g.stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return mixPremultiplied(a.Color, b.Color, (t-a.Offset)/span)
}

// mixPremultiplied interpolates in premultiplied space so a transparent stop fades
// alpha without dragging the color toward its (meaningless) RGB
func mixPremultiplied(a, b Color, t float64) Color {
	pa := colorful.Color{R: float64(a.R) / 255 * a.A, G: float64(a.G) / 255 * a.A, B: float64(a.B) / 255 * a.A}
	pb := colorful.Color{R: float64(b.R) / 255 * b.A, G: float64(b.G) / 255 * b.A, B: float64(b.B) / 255 * b.A}
	mixed := pa.BlendRgb(pb, t)
	alpha := vmath.Lerp(a.A, b.A, t)
	if alpha <= 0 {
		return Color{}
	}
	straight := colorful.Color{R: mixed.R / alpha, G: mixed.G / alpha, B: mixed.B / alpha}.Clamped()
	r, g, bb := straight.RGB255()
	return Color{R: r, G: g, B: bb, A: alpha}
}

// LinearGradient ramps along the segment (X0,Y0)-(X1,Y1)
type LinearGradient struct {
	gradient
	X0, Y0, X1, Y1 float64
}

// NewLinearGradient creates a gradient along (x0,y0)-(x1,y1) with no stops
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// At projects (x,y) onto the gradient axis
func (g *LinearGradient) At(x, y float64) Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return g.colorAt(0)
	}
	return g.colorAt(((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq)
}

// RadialGradient ramps between two concentric circles
type RadialGradient struct {
	gradient
	X, Y   float64
	R0, R1 float64
}

// NewRadialGradient creates a gradient between two circles sharing a center
func NewRadialGradient(x, y, r0, r1 float64) *RadialGradient {
	return &RadialGradient{X: x, Y: y, R0: r0, R1: r1}
}

// At maps distance from center to the ramp, inside R0 pads with the first stop
func (g *RadialGradient) At(x, y float64) Color {
	span := g.R1 - g.R0
	if span <= 0 {
		return g.colorAt(1)
	}
	d := math.Hypot(x-g.X, y-g.Y)
	return g.colorAt((d - g.R0) / span)
}
