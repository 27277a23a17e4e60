package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	return Blend(dst, src, alpha)
}

// Color is a straight (non-premultiplied) alpha paint color
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA builds a Color from channels and alpha in [0,1]
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// At implements Paint, a solid color is uniform
func (c Color) At(_, _ float64) Color {
	return c
}

// WithAlpha returns c with a replaced alpha
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGB drops alpha
func (c Color) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// Hex parses "#rrggbb" (or "#rgb") into a Color with the given alpha
func Hex(s string, alpha float64) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustHex is Hex for package-level palette tables
func MustHex(s string, alpha float64) Color {
	c, err := Hex(s, alpha)
	if err != nil {
		panic(err)
	}
	return c
}
