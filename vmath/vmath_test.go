package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.15, Clamp(0, 0.15, 1))
	assert.Equal(t, 1.0, Clamp(2, 0.15, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0.15, 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(3))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestSegmentDistSq(t *testing.T) {
	// Perpendicular foot inside segment
	assert.InDelta(t, 4.0, SegmentDistSq(5, 2, 0, 0, 10, 0), 1e-9)
	// Beyond endpoint measures to the endpoint
	assert.InDelta(t, 9.0, SegmentDistSq(13, 0, 0, 0, 10, 0), 1e-9)
	// Degenerate segment
	assert.InDelta(t, 25.0, SegmentDistSq(3, 4, 0, 0, 0, 0), 1e-9)
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range at %d: %f", i, v)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(7)
	b := NewFastRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	// Zero state would lock xorshift at zero
	assert.NotZero(t, r.Next())
}
