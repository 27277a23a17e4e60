package physics

import (
	"math"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/scene"
)

// TargetCount returns the pool size for a mode at an intensity
func TargetCount(mode scene.Mode, intensity float64) int {
	switch mode {
	case scene.ModeSnow:
		return int(math.Round(parameter.SnowParticlesMax * intensity))
	case scene.ModeRain:
		return int(math.Round(parameter.RainParticlesMax * intensity))
	case scene.ModeStorm:
		return int(math.Round(parameter.StormParticlesMax * intensity))
	case scene.ModeFog:
		return parameter.FogParticles
	default:
		return parameter.ClearParticles
	}
}

// BaseSpeed returns the spawn fall speed before depth scaling
func BaseSpeed(mode scene.Mode) float64 {
	switch mode {
	case scene.ModeRain:
		return parameter.RainBaseSpeed
	case scene.ModeSnow:
		return parameter.SnowBaseSpeed
	default:
		return parameter.AmbientBaseSpeed
	}
}

// Pool owns particle storage for one simulation
type Pool struct {
	particles []Particle
	rng       Source
}

// NewPool creates an empty pool drawing spawn samples from rng
func NewPool(rng Source) *Pool {
	return &Pool{
		particles: make([]Particle, 0, parameter.StormParticlesMax),
		rng:       rng,
	}
}

// Len returns the current particle count
func (p *Pool) Len() int {
	return len(p.particles)
}

// Particles exposes the backing slice for in-place integration.
// Valid until the next Adjust
func (p *Pool) Particles() []Particle {
	return p.particles
}

// Spawn samples a new particle inside a width x height area
func (p *Pool) Spawn(mode scene.Mode, width, height float64) Particle {
	x := p.rng.Float64() * width
	y := p.rng.Float64() * height
	z := p.rng.Float64()
	return Particle{
		X:     x,
		Y:     y,
		Z:     z,
		Speed: BaseSpeed(mode) * (parameter.SpeedDepthOffset + z),
		Seed:  p.rng.Float64() * parameter.SeedRange,
	}
}

// Adjust grows or shrinks the pool to exactly TargetCount(mode, intensity).
// Growth appends fresh spawns, shrink evicts from the tail
func (p *Pool) Adjust(mode scene.Mode, intensity, width, height float64) {
	target := max(TargetCount(mode, intensity), 0)
	for len(p.particles) < target {
		p.particles = append(p.particles, p.Spawn(mode, width, height))
	}
	if len(p.particles) > target {
		clear(p.particles[target:])
		p.particles = p.particles[:target]
	}
}
