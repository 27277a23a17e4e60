package engine

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/weather-scene/physics"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
	"github.com/lixenwraith/weather-scene/vmath"
	"github.com/lixenwraith/weather-scene/weather"
)

// SurfaceFunc acquires the drawing surface, nil when none is available
type SurfaceFunc func() render.Surface

// SourceFunc supplies the random source for a fresh simulation
type SourceFunc func() physics.Source

// ControllerConfig holds collaborators shared by every loop the controller creates
type ControllerConfig struct {
	Frames   FrameScheduler
	Resizes  ResizeNotifier
	Display  Display
	Surface  SurfaceFunc
	Renderer *render.SceneRenderer

	// WindScale converts m/s to px/s, negative selects the default
	WindScale float64

	// Source defaults to a clock-seeded FastRand
	Source SourceFunc

	Clock     clockwork.Clock
	Logger    *slog.Logger
	Observers []FrameObserver

	// OnRestart is called after a new loop starts
	OnRestart func(p *scene.Params)
}

// Controller binds observations to render loops. A parameter identity change tears the
// active loop down synchronously and starts a fresh one; no particles carry over
type Controller struct {
	cfg      ControllerConfig
	resolver *scene.Resolver
	params   *scene.Params
	loop     *Loop
	closed   bool
}

// NewController creates a controller with no active loop
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Source == nil {
		clock := cfg.Clock
		cfg.Source = func() physics.Source {
			return vmath.NewFastRand(uint64(clock.Now().UnixNano()))
		}
	}
	return &Controller{
		cfg:      cfg,
		resolver: scene.NewResolver(cfg.WindScale),
	}
}

// Params returns the parameters of the last accepted observation
func (c *Controller) Params() *scene.Params {
	return c.params
}

// Loop returns the active loop, nil when none runs
func (c *Controller) Loop() *Loop {
	return c.loop
}

// SetObservation resolves o and restarts the scene when the parameters changed
func (c *Controller) SetObservation(o *weather.Observation) {
	if c.closed {
		return
	}
	p := c.resolver.Resolve(o)
	if p == c.params && c.loop != nil {
		return
	}

	c.stopLoop()
	c.params = p

	surface := c.cfg.Surface()
	if surface == nil {
		c.cfg.Logger.Debug("no surface, scene idle", "mode", p.Mode)
		return
	}

	loop := NewLoop(LoopConfig{
		Simulation: NewSimulation(p, c.cfg.Source()),
		Renderer:   c.cfg.Renderer,
		Surface:    surface,
		Frames:     c.cfg.Frames,
		Resizes:    c.cfg.Resizes,
		Display:    c.cfg.Display,
		Clock:      c.cfg.Clock,
		Logger:     c.cfg.Logger,
		Observers:  c.cfg.Observers,
	})
	if err := loop.Start(); err != nil {
		c.cfg.Logger.Error("loop start failed", "error", err)
		return
	}
	c.loop = loop

	c.cfg.Logger.Info("scene started",
		"mode", p.Mode,
		"intensity", p.Intensity,
		"wind_x", p.Wind.X,
		"wind_y", p.Wind.Y,
		"conditions", o.Conditions(),
		"fog_likely", weather.FogLikely(o),
	)
	if c.cfg.OnRestart != nil {
		c.cfg.OnRestart(p)
	}
}

// Close stops the active loop, later observations are ignored
func (c *Controller) Close() {
	c.stopLoop()
	c.closed = true
}

func (c *Controller) stopLoop() {
	if c.loop == nil {
		return
	}
	c.loop.Stop()
	c.loop = nil
}
