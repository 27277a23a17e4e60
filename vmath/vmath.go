package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in layout pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// SegmentDistSq returns squared distance from point (px, py) to segment (x0,y0)-(x1,y1)
// Degenerate segments collapse to point distance
func SegmentDistSq(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = Clamp(((px-x0)*dx+(py-y0)*dy)/lenSq, 0, 1)
	}
	cx := x0 + t*dx - px
	cy := y0 + t*dy - py
	return cx*cx + cy*cy
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
