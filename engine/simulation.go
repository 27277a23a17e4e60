package engine

import (
	"math"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/physics"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
	"github.com/lixenwraith/weather-scene/vmath"
)

// CanvasState is the displayed size in layout pixels, the effective pixel ratio, and the
// backing store size derived from them
type CanvasState struct {
	Width      float64
	Height     float64
	PixelRatio float64

	BackingWidth  int
	BackingHeight int
}

// Snapshot is the simulation state after one Advance
type Snapshot struct {
	Params *scene.Params
	Canvas CanvasState

	// Time is accumulated simulation seconds, Delta the capped step that produced it
	Time  float64
	Delta float64

	// Stalled reports the raw frame delta exceeded the step cap
	Stalled bool

	// Particles is valid until the next Advance
	Particles []physics.Particle
}

// Frame converts the snapshot into the renderer's per-frame view
func (s Snapshot) Frame() render.Frame {
	f := render.Frame{
		Time:      s.Time,
		Width:     s.Canvas.Width,
		Height:    s.Canvas.Height,
		Particles: s.Particles,
	}
	if s.Params != nil {
		f.Mode = s.Params.Mode
		f.Intensity = s.Params.Intensity
	}
	return f
}

// Simulation owns one scene's particle pool and clock. Discarded whole on params change
type Simulation struct {
	params *scene.Params
	pool   *physics.Pool
	rng    physics.Source
	canvas CanvasState
	time   float64
}

// NewSimulation creates an empty simulation, particles spawn on the first Advance
func NewSimulation(params *scene.Params, rng physics.Source) *Simulation {
	if params == nil {
		params = &scene.Params{Mode: scene.ModeClear, Intensity: parameter.IntensityMin}
	}
	return &Simulation{
		params: params,
		pool:   physics.NewPool(rng),
		rng:    rng,
		canvas: CanvasState{PixelRatio: 1},
	}
}

// Params returns the scene parameters this simulation was built for
func (s *Simulation) Params() *scene.Params {
	return s.params
}

// Canvas returns the current layout state
func (s *Simulation) Canvas() CanvasState {
	return s.canvas
}

// Time returns accumulated simulation seconds
func (s *Simulation) Time() float64 {
	return s.time
}

// Len returns the current pool size
func (s *Simulation) Len() int {
	return s.pool.Len()
}

// ClampPixelRatio bounds a device ratio to the supported range, invalid input maps to 1
func ClampPixelRatio(dpr float64) float64 {
	if !vmath.IsFinite(dpr) || dpr <= 0 {
		return parameter.PixelRatioMin
	}
	return vmath.Clamp(dpr, parameter.PixelRatioMin, parameter.PixelRatioMax)
}

// Resize records new layout dimensions. Particles are not touched.
// Returns false when nothing changed
func (s *Simulation) Resize(width, height int, dpr float64) bool {
	dpr = ClampPixelRatio(dpr)
	w, h := float64(max(width, 0)), float64(max(height, 0))
	if w == s.canvas.Width && h == s.canvas.Height && dpr == s.canvas.PixelRatio && s.canvas.BackingWidth > 0 {
		return false
	}
	s.canvas = CanvasState{
		Width:         w,
		Height:        h,
		PixelRatio:    dpr,
		BackingWidth:  max(1, int(math.Floor(w*dpr))),
		BackingHeight: max(1, int(math.Floor(h*dpr))),
	}
	return true
}

// Advance steps the scene by dt seconds: caps the step, sizes the pool to its target,
// integrates every particle
func (s *Simulation) Advance(dt float64) Snapshot {
	stalled := dt > parameter.MaxFrameDelta
	if !vmath.IsFinite(dt) || dt < 0 {
		dt = 0
	}
	dt = min(dt, parameter.MaxFrameDelta)
	s.time += dt

	w, h := s.canvas.Width, s.canvas.Height
	s.pool.Adjust(s.params.Mode, s.params.Intensity, w, h)
	physics.Integrate(s.pool.Particles(), s.params, w, h, s.time, dt, s.rng)

	return Snapshot{
		Params:    s.params,
		Canvas:    s.canvas,
		Time:      s.time,
		Delta:     dt,
		Stalled:   stalled,
		Particles: s.pool.Particles(),
	}
}
