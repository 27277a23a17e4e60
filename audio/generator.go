package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/vmath"
)

// noise generates endless white noise from a seeded source
type noise struct {
	rng *vmath.FastRand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// lowpass is a one-pole filter: y += a*(x-y). Smaller a gives a darker sound
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	y        [2]float64
}

func newLowpass(s beep.Streamer, alpha float64) *lowpass {
	return &lowpass{streamer: s, alpha: vmath.Clamp(alpha, 0, 1)}
}

func (f *lowpass) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		f.y[0] += f.alpha * (samples[i][0] - f.y[0])
		f.y[1] += f.alpha * (samples[i][1] - f.y[1])
		samples[i][0] = f.y[0]
		samples[i][1] = f.y[1]
	}
	return n, ok
}

func (f *lowpass) Err() error { return f.streamer.Err() }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope creates an attack/sustain/release envelope ending after duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero is silence
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 || !vmath.IsFinite(vol) {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// NewHiss generates endless rain hiss
func NewHiss(seed uint64) beep.Streamer {
	return newLowpass(&noise{rng: vmath.NewFastRand(seed)}, parameter.HissLowpass)
}

// NewThunder generates one finite thunder rumble
func NewThunder(rate beep.SampleRate, seed uint64) beep.Streamer {
	rumble := newLowpass(&noise{rng: vmath.NewFastRand(seed)}, parameter.ThunderLowpass)
	shaped := newEnvelope(rumble, parameter.ThunderDuration, parameter.ThunderAttack, parameter.ThunderRelease, rate)
	return beep.Take(rate.N(parameter.ThunderDuration), newVolume(shaped, parameter.ThunderVolume))
}
