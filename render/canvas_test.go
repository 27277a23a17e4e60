package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = RGBA(0, 0, 0, 1)
	white = RGBA(255, 255, 255, 1)
)

func newBlackCanvas(w, h int) *Canvas {
	c := NewCanvas(black, black)
	c.Resize(w, h)
	return c
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(RGBA(10, 20, 30, 1), RGBA(10, 20, 30, 1))
	c.Resize(4, 3)

	w, h := c.Bounds()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, RGB{10, 20, 30}, c.Pixel(3, 2))

	c.Resize(2, 2)
	w, h = c.Bounds()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, RGBBlack, c.Pixel(3, 2), "outside bounds")

	c.Resize(-1, 5)
	w, _ = c.Bounds()
	assert.Zero(t, w)
}

func TestCanvasBackdropRamp(t *testing.T) {
	c := NewCanvas(RGBA(0, 0, 0, 1), RGBA(200, 200, 200, 1))
	c.Resize(1, 10)

	top, bottom := c.Pixel(0, 0), c.Pixel(0, 9)
	assert.Less(t, top.R, bottom.R)
	for y := 1; y < 10; y++ {
		assert.GreaterOrEqual(t, c.Pixel(0, y).R, c.Pixel(0, y-1).R)
	}
}

func TestCanvasClearRestoresBackdrop(t *testing.T) {
	c := newBlackCanvas(8, 8)
	c.FillRect(0, 0, 8, 8, white)
	require.Equal(t, RGB{255, 255, 255}, c.Pixel(4, 4))

	c.Clear()
	assert.Equal(t, RGBBlack, c.Pixel(4, 4))
}

func TestCanvasFillRectAlpha(t *testing.T) {
	c := newBlackCanvas(4, 4)
	c.FillRect(0, 0, 4, 4, white.WithAlpha(0.5))
	assert.Equal(t, RGB{128, 128, 128}, c.Pixel(2, 2))
}

func TestCanvasFillRectPartialCoverage(t *testing.T) {
	c := newBlackCanvas(4, 1)
	c.FillRect(0, 0, 1.5, 1, white)

	assert.Equal(t, RGB{255, 255, 255}, c.Pixel(0, 0))
	assert.Equal(t, RGB{128, 128, 128}, c.Pixel(1, 0))
	assert.Equal(t, RGBBlack, c.Pixel(2, 0))
}

func TestCanvasFillCircle(t *testing.T) {
	c := newBlackCanvas(10, 10)
	c.FillCircle(5, 5, 2, white)

	assert.Equal(t, RGB{255, 255, 255}, c.Pixel(5, 5))
	assert.Equal(t, RGBBlack, c.Pixel(0, 0))
	assert.Equal(t, RGBBlack, c.Pixel(9, 9))
}

func TestCanvasScaleTransform(t *testing.T) {
	c := NewCanvas(black, black)
	c.SetScale(2)
	c.Resize(20, 20)
	c.FillCircle(5, 5, 1, white)

	// user (5,5) lands on device (10,10)
	assert.Equal(t, RGB{255, 255, 255}, c.Pixel(10, 10))
	assert.Equal(t, RGBBlack, c.Pixel(5, 5))
	assert.Equal(t, 2.0, c.Scale())

	c.SetScale(math.NaN())
	assert.Equal(t, 1.0, c.Scale())
}

func TestCanvasStrokeLine(t *testing.T) {
	c := newBlackCanvas(10, 10)
	c.StrokeLine(0, 5, 10, 5, 2, white)

	assert.Equal(t, RGB{255, 255, 255}, c.Pixel(3, 5))
	assert.Equal(t, RGBBlack, c.Pixel(3, 0))
	assert.Equal(t, RGBBlack, c.Pixel(3, 9))
}

func TestCanvasIgnoresNonFinite(t *testing.T) {
	c := newBlackCanvas(6, 6)
	c.FillCircle(math.NaN(), 3, 2, white)
	c.StrokeLine(0, 0, math.Inf(1), 3, 1, white)
	c.FillRect(0, 0, math.NaN(), 6, white)
	c.FillRect(0, 0, 6, 6, nil)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			require.Equal(t, RGBBlack, c.Pixel(x, y))
		}
	}
}

func TestCanvasImage(t *testing.T) {
	c := newBlackCanvas(3, 2)
	c.FillRect(1, 1, 1, 1, RGBA(10, 20, 30, 1))

	img := c.Image()
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	px := img.RGBAAt(1, 1)
	assert.Equal(t, uint8(10), px.R)
	assert.Equal(t, uint8(20), px.G)
	assert.Equal(t, uint8(30), px.B)
	assert.Equal(t, uint8(255), px.A)
}

func TestAverage(t *testing.T) {
	assert.Equal(t, RGBBlack, Average())
	assert.Equal(t, RGB{100, 50, 1}, Average(RGB{200, 100, 2}, RGB{0, 0, 0}))
}
