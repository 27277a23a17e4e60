package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weather-scene/render"
)

// HalfBlock is the upper half block, foreground paints the top pixel
const HalfBlock = '▀'

// Screen adapts a tcell screen to engine.Display and presents canvases
type Screen struct {
	screen tcell.Screen
	ratio  float64
	block  []render.RGB // Reused sample buffer
}

// New creates, initializes and registers a terminal screen for crash restore
func New(ratio float64) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	SetCrashScreen(s)
	return Wrap(s, ratio), nil
}

// Wrap adapts an initialized tcell screen
func Wrap(s tcell.Screen, ratio float64) *Screen {
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{
		screen: s,
		ratio:  ratio,
		block:  make([]render.RGB, 0, 16),
	}
}

// Size implements engine.Display: columns by twice the rows, in layout pixels
func (s *Screen) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols, rows * 2
}

// PixelRatio implements engine.Display, the supersampling factor
func (s *Screen) PixelRatio() float64 {
	return s.ratio
}

// PollEvent blocks until the next terminal event, nil after Fini
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync forces a full redraw on the next Show
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Present downsamples the canvas to layout pixels and draws one half-block per cell pair
func (s *Screen) Present(c *render.Canvas) {
	if c == nil {
		return
	}
	cols, rows := s.screen.Size()
	scale := c.Scale()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := s.sample(c, col, row*2, scale)
			bottom := s.sample(c, col, row*2+1, scale)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// sample averages the device pixels covering layout pixel (x, y), black outside the canvas
func (s *Screen) sample(c *render.Canvas, x, y int, scale float64) render.RGB {
	x0, x1 := deviceSpan(x, scale)
	y0, y1 := deviceSpan(y, scale)

	s.block = s.block[:0]
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			s.block = append(s.block, c.Pixel(dx, dy))
		}
	}
	return render.Average(s.block...)
}

// deviceSpan maps layout pixel p to its device pixel range, at least one pixel wide
func deviceSpan(p int, scale float64) (int, int) {
	lo := int(float64(p) * scale)
	hi := int(float64(p+1) * scale)
	return lo, max(hi, lo+1)
}
