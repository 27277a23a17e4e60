package physics

// Source supplies uniform samples in [0, 1). Satisfied by *vmath.FastRand and *rand.Rand
type Source interface {
	Float64() float64
}

// Particle is one drifting element in layout pixel space
type Particle struct {
	X, Y  float64
	Z     float64 // depth in [0,1), 0 far and 1 near, fixed for life
	Speed float64 // baseline fall speed px/s
	Seed  float64 // turbulence phase in [0, SeedRange)

	// DriftX is the horizontal drift computed on the last step, px/s
	DriftX float64
}
