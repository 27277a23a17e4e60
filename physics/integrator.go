package physics

import (
	"math"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/scene"
)

// Turbulence returns the sinusoidal jitter amplitude for a mode
func Turbulence(mode scene.Mode) float64 {
	if mode == scene.ModeSnow {
		return parameter.SnowTurbulence
	}
	return parameter.DefaultTurbulence
}

// Step advances one particle by dt seconds at simulation time t and applies the
// boundary policy for a width x height viewport. Z is never written
func Step(pt *Particle, params *scene.Params, width, height, t, dt float64, rng Source) {
	depth := parameter.DepthBase + pt.Z*parameter.DepthScale

	driftX := params.Wind.X*(parameter.WindDriftDepthOffset+pt.Z) +
		math.Sin(t*parameter.TurbulenceFrequency+pt.Seed)*Turbulence(params.Mode)
	driftY := params.Wind.Y * parameter.WindDriftVertical

	pt.DriftX = driftX
	pt.X += driftX * dt
	pt.Y += (pt.Speed*depth + driftY) * dt

	// Re-seed from the top, no horizontal continuity
	if pt.Y > height+parameter.RespawnMarginY {
		pt.Y = -parameter.RespawnMarginY
		pt.X = rng.Float64() * width
	}

	// Horizontal wrap, both directions
	if pt.X < -parameter.WrapMarginX {
		pt.X = width + parameter.WrapMarginX
	} else if pt.X > width+parameter.WrapMarginX {
		pt.X = -parameter.WrapMarginX
	}
}

// Integrate steps every particle in place
func Integrate(particles []Particle, params *scene.Params, width, height, t, dt float64, rng Source) {
	for i := range particles {
		Step(&particles[i], params, width, height, t, dt, rng)
	}
}
