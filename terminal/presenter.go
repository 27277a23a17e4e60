package terminal

import (
	"time"

	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/render"
)

// Presenter pushes each completed frame's canvas to the screen
type Presenter struct {
	screen *Screen
	canvas *render.Canvas
}

// NewPresenter binds a canvas to a screen
func NewPresenter(screen *Screen, canvas *render.Canvas) *Presenter {
	return &Presenter{screen: screen, canvas: canvas}
}

// ObserveFrame implements engine.FrameObserver
func (p *Presenter) ObserveFrame(_ engine.Snapshot, _ time.Duration) {
	p.screen.Present(p.canvas)
}
