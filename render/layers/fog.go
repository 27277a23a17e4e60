package layers

import (
	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/parameter/visual"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
)

// FogRenderer layers two haze bands over the lower part of the scene
type FogRenderer struct{}

// NewFogRenderer creates the fog overlay
func NewFogRenderer() *FogRenderer {
	return &FogRenderer{}
}

// IsVisible implements render.VisibilityToggle
func (r *FogRenderer) IsVisible(f render.Frame) bool {
	return f.Mode == scene.ModeFog
}

// Render fills the near band then the taller far band
func (r *FogRenderer) Render(f render.Frame, s render.Surface) {
	s.FillRect(0, f.Height*parameter.FogNearBandTop, f.Width, f.Height*parameter.FogNearBandHeight,
		visual.FogBand.WithAlpha(parameter.FogNearBandAlpha))
	s.FillRect(0, f.Height*parameter.FogFarBandTop, f.Width, f.Height*parameter.FogFarBandHeight,
		visual.FogBand.WithAlpha(parameter.FogFarBandAlpha))
}
