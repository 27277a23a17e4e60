package layers

import (
	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/parameter/visual"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
)

// ParticleRenderer draws the pool: streaks for rain and storm, flakes for snow,
// dust motes otherwise
type ParticleRenderer struct{}

// NewParticleRenderer creates the particle layer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws every particle in the frame view
func (p *ParticleRenderer) Render(f render.Frame, s render.Surface) {
	switch f.Mode {
	case scene.ModeRain, scene.ModeStorm:
		col := visual.StreakColor(f.Mode)
		for i := range f.Particles {
			pt := &f.Particles[i]
			s.StrokeLine(
				pt.X, pt.Y,
				pt.X+pt.DriftX*parameter.StreakDriftScale,
				pt.Y+parameter.StreakLengthBase+pt.Z*parameter.StreakLengthZ,
				parameter.StreakWidthBase+pt.Z*parameter.StreakWidthZ,
				col,
			)
		}

	case scene.ModeSnow:
		for i := range f.Particles {
			pt := &f.Particles[i]
			s.FillCircle(pt.X, pt.Y,
				parameter.FlakeRadiusBase+pt.Z*parameter.FlakeRadiusZ,
				visual.Flake.WithAlpha(parameter.FlakeAlphaBase+pt.Z*parameter.FlakeAlphaZ),
			)
		}

	default:
		col, base := visual.DustClear, parameter.DustClearAlphaBase
		if f.Mode == scene.ModeFog {
			col, base = visual.DustFog, parameter.DustFogAlphaBase
		}
		for i := range f.Particles {
			pt := &f.Particles[i]
			s.FillCircle(pt.X, pt.Y,
				parameter.DustRadiusBase+pt.Z*parameter.DustRadiusZ,
				col.WithAlpha(base+pt.Z*parameter.DustAlphaZ),
			)
		}
	}
}
