package layers

import (
	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/parameter/visual"
	"github.com/lixenwraith/weather-scene/render"
)

// VignetteRenderer clears the surface and tints it with a mode-colored radial glow
type VignetteRenderer struct{}

// NewVignetteRenderer creates the background layer
func NewVignetteRenderer() *VignetteRenderer {
	return &VignetteRenderer{}
}

// Render clears then fills the full surface with the vignette gradient
func (v *VignetteRenderer) Render(f render.Frame, s render.Surface) {
	s.Clear()

	g := render.NewRadialGradient(
		f.Width*parameter.VignetteCenterX,
		f.Height*parameter.VignetteCenterY,
		parameter.VignetteInnerRadius,
		max(f.Width, f.Height),
	)
	g.AddColorStop(0, visual.VignetteColor(f.Mode))
	g.AddColorStop(1, visual.VignetteOuter)

	s.FillRect(0, 0, f.Width, f.Height, g)
}
