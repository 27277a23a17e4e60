package engine

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/physics"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/render/layers"
	"github.com/lixenwraith/weather-scene/scene"
	"github.com/lixenwraith/weather-scene/vmath"
)

type fakeDisplay struct {
	w, h int
	dpr  float64
}

func (d *fakeDisplay) Size() (int, int)    { return d.w, d.h }
func (d *fakeDisplay) PixelRatio() float64 { return d.dpr }

// countingSurface counts backing store and clear calls on top of a real canvas
type countingSurface struct {
	*render.Canvas
	resizes int
	clears  int
}

func newCountingSurface() *countingSurface {
	return &countingSurface{Canvas: render.NewCanvas(render.RGBA(0, 0, 0, 1), render.RGBA(0, 0, 0, 1))}
}

func (s *countingSurface) Resize(w, h int) {
	s.resizes++
	s.Canvas.Resize(w, h)
}

func (s *countingSurface) Clear() {
	s.clears++
	s.Canvas.Clear()
}

// manualFrames hands out callbacks without running them
type manualFrames struct {
	next      FrameID
	fns       map[FrameID]FrameFunc
	cancelled []FrameID
}

func (m *manualFrames) RequestFrame(fn FrameFunc) FrameID {
	if m.fns == nil {
		m.fns = make(map[FrameID]FrameFunc)
	}
	m.next++
	m.fns[m.next] = fn
	return m.next
}

func (m *manualFrames) CancelFrame(id FrameID) {
	m.cancelled = append(m.cancelled, id)
	delete(m.fns, id)
}

type loopFixture struct {
	clock   *clockwork.FakeClock
	host    *Host
	display *fakeDisplay
	surface *countingSurface
	loop    *Loop
	last    Snapshot
}

func newLoopFixture(t *testing.T, mode scene.Mode, intensity float64) *loopFixture {
	t.Helper()
	f := &loopFixture{
		clock:   clockwork.NewFakeClock(),
		display: &fakeDisplay{w: 100, h: 50, dpr: 2},
		surface: newCountingSurface(),
	}
	f.host = NewHost(f.clock, 60, nil)
	f.loop = NewLoop(LoopConfig{
		Simulation: NewSimulation(&scene.Params{Mode: mode, Intensity: intensity}, vmath.NewFastRand(7)),
		Renderer:   layers.NewDefault(),
		Surface:    f.surface,
		Frames:     f.host,
		Resizes:    f.host,
		Display:    f.display,
		Clock:      f.clock,
		Observers: []FrameObserver{ObserverFunc(func(s Snapshot, _ time.Duration) {
			f.last = s
		})},
	})
	return f
}

// frame advances the clock by d and flushes one host tick
func (f *loopFixture) frame(d time.Duration) int {
	f.clock.Advance(d)
	return f.host.Flush(f.clock.Now())
}

func TestLoopStart(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	assert.Equal(t, LoopIdle, f.loop.State())

	require.NoError(t, f.loop.Start())
	assert.Equal(t, LoopRunning, f.loop.State())
	assert.Equal(t, 1, f.host.Pending())

	w, h := f.surface.Bounds()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, 2.0, f.surface.Scale())

	assert.ErrorIs(t, f.loop.Start(), ErrLoopNotIdle)
}

func TestLoopPoolMatchesTarget(t *testing.T) {
	f := newLoopFixture(t, scene.ModeSnow, 0.5)
	require.NoError(t, f.loop.Start())

	want := physics.TargetCount(scene.ModeSnow, 0.5)
	for i := 0; i < 30; i++ {
		require.Equal(t, 1, f.frame(16*time.Millisecond))
		require.Len(t, f.last.Particles, want)
		for _, p := range f.last.Particles {
			require.GreaterOrEqual(t, p.Y, -parameter.RespawnMarginY)
			require.LessOrEqual(t, p.Y, 50+parameter.RespawnMarginY)
		}
	}
	assert.Equal(t, uint64(30), f.loop.Frames())
	assert.Equal(t, 30, f.surface.clears)
}

func TestLoopTimeMonotonic(t *testing.T) {
	f := newLoopFixture(t, scene.ModeClear, parameter.IntensityMin)
	require.NoError(t, f.loop.Start())

	prev := 0.0
	for i := 0; i < 10; i++ {
		f.frame(10 * time.Millisecond)
		assert.Greater(t, f.last.Time, prev)
		prev = f.last.Time
	}
	assert.InDelta(t, 0.1, prev, 1e-9)
}

func TestLoopCapsStalledFrame(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	require.NoError(t, f.loop.Start())

	f.frame(time.Second)
	assert.True(t, f.last.Stalled)
	assert.Equal(t, parameter.MaxFrameDelta, f.last.Delta)
	assert.InDelta(t, parameter.MaxFrameDelta, f.last.Time, 1e-12)
}

func TestLoopStopCancelsPending(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	require.NoError(t, f.loop.Start())
	f.frame(16 * time.Millisecond)
	clears := f.surface.clears

	f.loop.Stop()
	assert.Equal(t, LoopStopped, f.loop.State())
	assert.Zero(t, f.host.Pending())
	assert.Zero(t, f.frame(16*time.Millisecond))
	assert.Equal(t, clears, f.surface.clears)

	f.loop.Stop()
	assert.Equal(t, LoopStopped, f.loop.State())
}

func TestLoopStaleCallbackAfterStop(t *testing.T) {
	frames := &manualFrames{}
	host := NewHost(clockwork.NewFakeClock(), 60, nil)
	surface := newCountingSurface()
	loop := NewLoop(LoopConfig{
		Simulation: NewSimulation(&scene.Params{Mode: scene.ModeStorm, Intensity: 1}, vmath.NewFastRand(1)),
		Renderer:   layers.NewDefault(),
		Surface:    surface,
		Frames:     frames,
		Resizes:    host,
		Display:    &fakeDisplay{w: 40, h: 30, dpr: 1},
	})
	require.NoError(t, loop.Start())
	require.Len(t, frames.fns, 1)

	// The host already dispatched this callback when Stop lands
	var stale FrameFunc
	for _, fn := range frames.fns {
		stale = fn
	}
	loop.Stop()
	require.Len(t, frames.cancelled, 1)

	stale(time.Now())
	assert.Zero(t, surface.clears, "no drawing after stop")
	assert.Empty(t, frames.fns, "no reschedule after stop")
	assert.Zero(t, loop.Frames())
}

func TestLoopStopDuringFlush(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	require.NoError(t, f.loop.Start())

	// A callback queued ahead of the loop's tick stops it within the same batch
	f.host.pending = append([]pendingFrame{{id: 0, fn: func(time.Time) { f.loop.Stop() }}}, f.host.pending...)
	assert.Equal(t, 1, f.frame(16*time.Millisecond))
	assert.Zero(t, f.surface.clears)
	assert.Zero(t, f.host.Pending())
}

func TestLoopResize(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	require.NoError(t, f.loop.Start())
	for i := 0; i < 5; i++ {
		f.frame(16 * time.Millisecond)
	}
	before := slices.Clone(f.last.Particles)
	require.Equal(t, 1, f.surface.resizes)

	f.display.w, f.display.h, f.display.dpr = 80, 40, 3
	f.host.NotifyResize()

	w, h := f.surface.Bounds()
	assert.Equal(t, 160, w)
	assert.Equal(t, 80, h)
	assert.Equal(t, 2, f.surface.resizes)
	assert.Equal(t, before, f.loop.cfg.Simulation.pool.Particles(), "particles untouched by resize")

	f.host.NotifyResize()
	f.frame(16 * time.Millisecond)
	assert.Equal(t, 2, f.surface.resizes, "unchanged layout is a no-op")
}

func TestLoopRemovesListenerOnStop(t *testing.T) {
	f := newLoopFixture(t, scene.ModeRain, 1)
	require.NoError(t, f.loop.Start())
	f.loop.Stop()

	f.display.w = 10
	f.host.NotifyResize()
	assert.Equal(t, 1, f.surface.resizes)
}

func TestClampPixelRatio(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1, 1},
		{1.5, 1.5},
		{2, 2},
		{3, 2},
		{0, 1},
		{-2, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPixelRatio(tt.in), "ratio %v", tt.in)
	}
}

func TestSimulationResize(t *testing.T) {
	sim := NewSimulation(nil, vmath.NewFastRand(3))
	assert.Equal(t, scene.ModeClear, sim.Params().Mode)

	assert.True(t, sim.Resize(101, 51, 1.5))
	c := sim.Canvas()
	assert.Equal(t, 151, c.BackingWidth)
	assert.Equal(t, 76, c.BackingHeight)
	assert.False(t, sim.Resize(101, 51, 1.5))

	assert.True(t, sim.Resize(0, 0, 1))
	c = sim.Canvas()
	assert.Equal(t, 1, c.BackingWidth, "backing store never collapses")
	assert.Equal(t, 1, c.BackingHeight)
}

func TestSimulationAdvance(t *testing.T) {
	sim := NewSimulation(&scene.Params{Mode: scene.ModeFog, Intensity: 1}, vmath.NewFastRand(9))
	sim.Resize(300, 200, 1)

	snap := sim.Advance(-1)
	assert.Zero(t, snap.Delta)
	assert.Zero(t, snap.Time)
	assert.Len(t, snap.Particles, parameter.FogParticles)

	snap = sim.Advance(math.NaN())
	assert.Zero(t, snap.Time)

	snap = sim.Advance(0.01)
	assert.InDelta(t, 0.01, snap.Time, 1e-12)
	assert.False(t, snap.Stalled)

	frame := snap.Frame()
	assert.Equal(t, scene.ModeFog, frame.Mode)
	assert.Equal(t, 300.0, frame.Width)
	assert.Len(t, frame.Particles, parameter.FogParticles)
}
