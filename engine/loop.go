package engine

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/weather-scene/render"
)

// LoopState is the render loop lifecycle: Idle -> Running -> Stopped
type LoopState int32

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrLoopNotIdle is returned by Start on a loop that already ran
var ErrLoopNotIdle = errors.New("loop already started")

// LoopConfig wires one loop instance to its host collaborators
type LoopConfig struct {
	Simulation *Simulation
	Renderer   *render.SceneRenderer
	Surface    render.Surface

	Frames  FrameScheduler
	Resizes ResizeNotifier
	Display Display

	Clock     clockwork.Clock
	Logger    *slog.Logger
	Observers []FrameObserver
}

// Loop drives a Simulation and renders it once per host frame until stopped.
// All methods must be called from the host goroutine
type Loop struct {
	cfg   LoopConfig
	state atomic.Int32

	frameID     FrameID
	hasFrame    bool
	listenerID  ListenerID
	hasListener bool

	last   time.Time
	frames uint64

	// Stall warnings are throttled, a hung terminal would otherwise flood the log
	stallLog *rate.Limiter
}

// NewLoop creates an idle loop
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		cfg:      cfg,
		stallLog: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

// State returns the lifecycle state, safe from any goroutine
func (l *Loop) State() LoopState {
	return LoopState(l.state.Load())
}

// Frames returns the number of completed ticks
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Start attaches the resize listener, sizes the backing store and requests the first frame
func (l *Loop) Start() error {
	if !l.state.CompareAndSwap(int32(LoopIdle), int32(LoopRunning)) {
		return ErrLoopNotIdle
	}

	l.listenerID = l.cfg.Resizes.AddResizeListener(l.syncLayout)
	l.hasListener = true
	l.syncLayout()
	l.last = l.cfg.Clock.Now()
	l.request()

	l.cfg.Logger.Debug("loop started",
		"mode", l.cfg.Simulation.Params().Mode,
		"width", l.cfg.Simulation.Canvas().Width,
		"height", l.cfg.Simulation.Canvas().Height,
	)
	return nil
}

// Stop ends the loop. The state flips before the pending frame is cancelled and the
// listener removed, so a callback already dispatched by the host sees Stopped and returns.
// Idempotent
func (l *Loop) Stop() {
	prev := LoopState(l.state.Swap(int32(LoopStopped)))
	if prev == LoopStopped {
		return
	}

	if l.hasFrame {
		l.cfg.Frames.CancelFrame(l.frameID)
		l.hasFrame = false
	}
	if l.hasListener {
		l.cfg.Resizes.RemoveResizeListener(l.listenerID)
		l.hasListener = false
	}

	if prev == LoopRunning {
		l.cfg.Logger.Debug("loop stopped", "frames", l.frames, "sim_time", l.cfg.Simulation.Time())
	}
}

func (l *Loop) request() {
	l.frameID = l.cfg.Frames.RequestFrame(l.tick)
	l.hasFrame = true
}

// tick runs one frame. Running is checked before any work and again before rescheduling
func (l *Loop) tick(now time.Time) {
	if l.State() != LoopRunning {
		return
	}
	l.hasFrame = false
	start := l.cfg.Clock.Now()

	dt := now.Sub(l.last).Seconds()
	l.last = now

	l.syncLayout()
	snap := l.cfg.Simulation.Advance(dt)
	if snap.Stalled && l.stallLog.Allow() {
		l.cfg.Logger.Warn("frame stalled, step capped",
			"delta", time.Duration(dt*float64(time.Second)),
			"capped", snap.Delta,
		)
	}

	if l.cfg.Renderer != nil {
		l.cfg.Renderer.Render(snap.Frame(), l.cfg.Surface)
	}
	l.frames++

	elapsed := l.cfg.Clock.Since(start)
	for _, o := range l.cfg.Observers {
		o.ObserveFrame(snap, elapsed)
	}

	if l.State() == LoopRunning {
		l.request()
	}
}

// syncLayout matches the backing store to the display. Idempotent: an unchanged display
// costs one size comparison
func (l *Loop) syncLayout() {
	if l.State() != LoopRunning {
		return
	}
	w, h := l.cfg.Display.Size()
	if !l.cfg.Simulation.Resize(w, h, l.cfg.Display.PixelRatio()) {
		return
	}

	c := l.cfg.Simulation.Canvas()
	l.cfg.Surface.Resize(c.BackingWidth, c.BackingHeight)
	l.cfg.Surface.SetScale(c.PixelRatio)
	l.cfg.Logger.Debug("layout synced",
		"width", c.Width,
		"height", c.Height,
		"ratio", c.PixelRatio,
		"backing_width", c.BackingWidth,
		"backing_height", c.BackingHeight,
	)
}
