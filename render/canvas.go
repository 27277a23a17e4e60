package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/weather-scene/vmath"
)

// Canvas is a software Surface: an opaque RGB backing store with source-over alpha
// compositing and anti-aliased coverage for circles and lines
type Canvas struct {
	pix      []RGB
	backdrop []RGB // Optimization: cached sky, Clear is a single copy
	width    int
	height   int
	scale    float64

	skyTop    Color
	skyBottom Color
}

// NewCanvas creates an empty canvas whose backdrop is a vertical sky ramp
func NewCanvas(skyTop, skyBottom Color) *Canvas {
	return &Canvas{
		scale:     1,
		skyTop:    skyTop,
		skyBottom: skyBottom,
	}
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
		c.backdrop = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
		c.backdrop = c.backdrop[:size]
	}
	c.width = width
	c.height = height
	c.paintBackdrop()
	c.Clear()
}

// Bounds returns backing store size in device pixels
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// SetScale sets the user-to-device transform, invalid scales fall back to 1
func (c *Canvas) SetScale(s float64) {
	if !(s > 0) || math.IsInf(s, 0) {
		s = 1
	}
	if s == c.scale {
		return
	}
	c.scale = s
	c.paintBackdrop()
}

// Scale returns the current transform
func (c *Canvas) Scale() float64 {
	return c.scale
}

// paintBackdrop renders the sky ramp in user space over black
func (c *Canvas) paintBackdrop() {
	if c.height == 0 {
		return
	}
	sky := NewLinearGradient(0, 0, 0, float64(c.height)/c.scale)
	sky.AddColorStop(0, c.skyTop)
	sky.AddColorStop(1, c.skyBottom)

	for y := 0; y < c.height; y++ {
		col := sky.At(0, (float64(y)+0.5)/c.scale)
		row := RGBBlack.Blend(col.RGB(), col.A)
		line := c.backdrop[y*c.width : (y+1)*c.width]
		for x := range line {
			line[x] = row
		}
	}
}

// Clear resets all pixels to the backdrop
func (c *Canvas) Clear() {
	copy(c.pix, c.backdrop)
}

// Pixel returns the device pixel at (x, y), black outside bounds
func (c *Canvas) Pixel(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// composite blends col at coverage into pixel idx
func (c *Canvas) composite(idx int, col Color, coverage float64) {
	a := col.A * coverage
	if a <= 0 {
		return
	}
	c.pix[idx] = Blend(c.pix[idx], col.RGB(), a)
}

// span clips a device-space interval to [0, limit) pixel indices
func span(lo, hi float64, limit int) (int, int) {
	return max(int(math.Floor(lo)), 0), min(int(math.Ceil(hi)), limit)
}

// overlap returns how much of pixel [p, p+1) lies inside [lo, hi]
func overlap(p int, lo, hi float64) float64 {
	return math.Max(0, math.Min(float64(p+1), hi)-math.Max(float64(p), lo))
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if !vmath.IsFinite(v) {
			return false
		}
	}
	return true
}

// FillRect fills a rectangle, edge pixels get fractional coverage
func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	if p == nil || w <= 0 || h <= 0 || !finite(x, y, w, h) {
		return
	}
	s := c.scale
	x0, y0, x1, y1 := x*s, y*s, (x+w)*s, (y+h)*s
	px0, px1 := span(x0, x1, c.width)
	py0, py1 := span(y0, y1, c.height)

	for py := py0; py < py1; py++ {
		covY := overlap(py, y0, y1)
		uy := (float64(py) + 0.5) / s
		for px := px0; px < px1; px++ {
			col := p.At((float64(px)+0.5)/s, uy)
			c.composite(py*c.width+px, col, covY*overlap(px, x0, x1))
		}
	}
}

// FillCircle fills a disc with a half-pixel anti-aliased rim
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || col.A <= 0 || !finite(cx, cy, r) {
		return
	}
	s := c.scale
	dcx, dcy, dr := cx*s, cy*s, r*s
	px0, px1 := span(dcx-dr-1, dcx+dr+1, c.width)
	py0, py1 := span(dcy-dr-1, dcy+dr+1, c.height)

	for py := py0; py < py1; py++ {
		dy := float64(py) + 0.5 - dcy
		for px := px0; px < px1; px++ {
			dx := float64(px) + 0.5 - dcx
			cov := vmath.Clamp(dr-math.Hypot(dx, dy)+0.5, 0, 1)
			c.composite(py*c.width+px, col, cov)
		}
	}
}

// StrokeLine strokes a segment, coverage from distance to the segment
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	if width <= 0 || col.A <= 0 || !finite(x0, y0, x1, y1, width) {
		return
	}
	s := c.scale
	ax, ay, bx, by := x0*s, y0*s, x1*s, y1*s
	half := width * s / 2
	px0, px1 := span(math.Min(ax, bx)-half-1, math.Max(ax, bx)+half+1, c.width)
	py0, py1 := span(math.Min(ay, by)-half-1, math.Max(ay, by)+half+1, c.height)

	for py := py0; py < py1; py++ {
		fy := float64(py) + 0.5
		for px := px0; px < px1; px++ {
			d := math.Sqrt(vmath.SegmentDistSq(float64(px)+0.5, fy, ax, ay, bx, by))
			cov := vmath.Clamp(half-d+0.5, 0, 1)
			c.composite(py*c.width+px, col, cov)
		}
	}
}

// Image copies the backing store into an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
