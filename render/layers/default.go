// Package layers holds the weather scene's render layers
package layers

import (
	"github.com/lixenwraith/weather-scene/render"
)

// NewDefault returns a renderer with the standard layer stack:
// vignette, particles, fog bands, lightning flash
func NewDefault() *render.SceneRenderer {
	r := render.NewSceneRenderer()
	r.Register(NewVignetteRenderer(), render.PriorityBackground)
	r.Register(NewParticleRenderer(), render.PriorityParticle)
	r.Register(NewFogRenderer(), render.PriorityOverlay)
	r.Register(NewFlashRenderer(), render.PriorityFlash)
	return r
}
