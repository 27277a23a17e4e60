package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/render"
)

func newSimScreen(t *testing.T, cols, rows int, ratio float64) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return Wrap(sim, ratio), sim
}

func cellColors(t *testing.T, sim tcell.SimulationScreen, x, y int) (rune, render.RGB, render.RGB) {
	t.Helper()
	mainc, _, style, _ := sim.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	fr, fgG, fb := fg.RGB()
	br, bgG, bb := bg.RGB()
	return mainc,
		render.RGB{R: uint8(fr), G: uint8(fgG), B: uint8(fb)},
		render.RGB{R: uint8(br), G: uint8(bgG), B: uint8(bb)}
}

func TestScreenSize(t *testing.T) {
	s, _ := newSimScreen(t, 20, 8, 2)
	w, h := s.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 16, h)
	assert.Equal(t, 2.0, s.PixelRatio())

	var _ engine.Display = s
}

func TestPresentHalfBlocks(t *testing.T) {
	s, sim := newSimScreen(t, 2, 1, 1)

	c := render.NewCanvas(render.RGBA(0, 0, 0, 1), render.RGBA(0, 0, 0, 1))
	c.Resize(2, 2)
	c.FillRect(0, 0, 2, 1, render.RGBA(255, 0, 0, 1))
	c.FillRect(0, 1, 2, 1, render.RGBA(0, 0, 255, 1))

	s.Present(c)

	r, fg, bg := cellColors(t, sim, 0, 0)
	assert.Equal(t, HalfBlock, r)
	assert.Equal(t, render.RGB{R: 255}, fg)
	assert.Equal(t, render.RGB{B: 255}, bg)
}

func TestPresentDownsamples(t *testing.T) {
	s, sim := newSimScreen(t, 1, 1, 2)

	c := render.NewCanvas(render.RGBA(0, 0, 0, 1), render.RGBA(0, 0, 0, 1))
	c.SetScale(2)
	c.Resize(2, 4)
	// Left half of the upper layout pixel white, right half black
	c.FillRect(0, 0, 0.5, 1, render.RGBA(200, 200, 200, 1))

	s.Present(c)

	_, fg, bg := cellColors(t, sim, 0, 0)
	assert.Equal(t, render.RGB{R: 100, G: 100, B: 100}, fg)
	assert.Equal(t, render.RGBBlack, bg)
}

func TestPresenterObservesFrames(t *testing.T) {
	s, sim := newSimScreen(t, 1, 1, 1)
	c := render.NewCanvas(render.RGBA(9, 9, 9, 1), render.RGBA(9, 9, 9, 1))
	c.Resize(1, 2)

	var obs engine.FrameObserver = NewPresenter(s, c)
	obs.ObserveFrame(engine.Snapshot{}, 0)

	_, fg, _ := cellColors(t, sim, 0, 0)
	assert.Equal(t, render.RGB{R: 9, G: 9, B: 9}, fg)
}

func TestDeviceSpan(t *testing.T) {
	lo, hi := deviceSpan(3, 2)
	assert.Equal(t, 6, lo)
	assert.Equal(t, 8, hi)

	lo, hi = deviceSpan(1, 1.5)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)

	lo, hi = deviceSpan(0, 0.5)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1, hi)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Action{Kind: ActionQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Action{Kind: ActionQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Action{Kind: ActionQuit}},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), Action{Kind: ActionNextPreset}},
		{"1", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), Action{Kind: ActionPreset, Index: 0}},
		{"5", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), Action{Kind: ActionPreset, Index: 4}},
		{"ctrl-l", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), Action{Kind: ActionRedraw}},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Action{Kind: ActionNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyAction(tt.ev))
		})
	}
}
