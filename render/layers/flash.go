package layers

import (
	"github.com/lixenwraith/weather-scene/parameter/visual"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
)

// FlashRenderer washes the surface with lightning light while the strobe is lit
type FlashRenderer struct{}

// NewFlashRenderer creates the storm flash overlay
func NewFlashRenderer() *FlashRenderer {
	return &FlashRenderer{}
}

// IsVisible implements render.VisibilityToggle
func (r *FlashRenderer) IsVisible(f render.Frame) bool {
	return f.Mode == scene.ModeStorm
}

// Render fills the surface only when the strobe is nonzero
func (r *FlashRenderer) Render(f render.Frame, s render.Surface) {
	a := render.FlashAlpha(f.Time)
	if a <= 0 {
		return
	}
	s.FillRect(0, 0, f.Width, f.Height, visual.Flash.WithAlpha(a))
}
