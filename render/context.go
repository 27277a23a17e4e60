package render

import (
	"math"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/physics"
	"github.com/lixenwraith/weather-scene/scene"
)

// Frame provides per-frame scene state for layers, passed by value
type Frame struct {
	Mode      scene.Mode
	Intensity float64

	// Simulation time in seconds
	Time float64

	// Surface size in layout pixels
	Width  float64
	Height float64

	// Particles is a read-only view, valid for the duration of Render
	Particles []physics.Particle
}

// FlashAlpha returns the lightning strobe alpha at simulation time t.
// Deterministic: nonzero only near the crest of sin(t*0.9)
func FlashAlpha(t float64) float64 {
	if math.Sin(t*parameter.FlashFrequency) > parameter.FlashThreshold {
		return parameter.FlashAlpha
	}
	return 0
}
