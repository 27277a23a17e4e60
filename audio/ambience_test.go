package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/scene"
)

var flashCrest = (math.Pi / 2) / parameter.FlashFrequency

func snapshot(mode scene.Mode, intensity, t float64) engine.Snapshot {
	return engine.Snapshot{
		Params: &scene.Params{Mode: mode, Intensity: intensity},
		Time:   t,
	}
}

func drain(s beep.Streamer, n int) ([][2]float64, int) {
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	return buf, got
}

func TestHissLevel(t *testing.T) {
	assert.InDelta(t, parameter.RainHissVolume, HissLevel(scene.ModeRain, 1), 1e-12)
	assert.InDelta(t, parameter.StormHissVolume*0.5, HissLevel(scene.ModeStorm, 0.5), 1e-12)
	assert.Zero(t, HissLevel(scene.ModeSnow, 1))
	assert.Zero(t, HissLevel(scene.ModeClear, 1))
}

func TestAmbienceSilentByDefault(t *testing.T) {
	a := NewAmbience(1, nil)
	a.ObserveFrame(snapshot(scene.ModeClear, 0.15, 0), 0)

	buf, n := drain(a, 256)
	require.Equal(t, 256, n)
	for _, s := range buf {
		require.Zero(t, s[0])
		require.Zero(t, s[1])
	}
	assert.Equal(t, 1, a.Voices())
}

func TestAmbienceRainHiss(t *testing.T) {
	a := NewAmbience(1, nil)
	a.ObserveFrame(snapshot(scene.ModeRain, 1, 0), time.Millisecond)
	assert.InDelta(t, parameter.RainHissVolume, a.HissVolume(), 1e-12)

	buf, n := drain(a, 1024)
	require.Equal(t, 1024, n)
	nonzero := 0
	for _, s := range buf {
		require.LessOrEqual(t, math.Abs(s[0]), 1.0)
		if s[0] != 0 {
			nonzero++
		}
	}
	assert.Greater(t, nonzero, 0)

	a.ObserveFrame(snapshot(scene.ModeSnow, 1, 0), 0)
	assert.Zero(t, a.HissVolume())
}

func TestAmbienceThunderOnRisingEdge(t *testing.T) {
	a := NewAmbience(3, nil)

	a.ObserveFrame(snapshot(scene.ModeStorm, 1, flashCrest), 0)
	assert.Equal(t, 2, a.Voices())

	// Still lit on the next frame, no second strike
	a.ObserveFrame(snapshot(scene.ModeStorm, 1, flashCrest+0.001), 0)
	assert.Equal(t, 2, a.Voices())

	a.ObserveFrame(snapshot(scene.ModeStorm, 1, 0), 0)
	a.ObserveFrame(snapshot(scene.ModeStorm, 1, flashCrest), 0)
	assert.Equal(t, 3, a.Voices())
}

func TestAmbienceIgnoresMissingParams(t *testing.T) {
	a := NewAmbience(1, nil)
	a.ObserveFrame(engine.Snapshot{}, 0)
	assert.Equal(t, 1, a.Voices())
}

func TestThunderIsFinite(t *testing.T) {
	th := NewThunder(sampleRate, 9)
	want := sampleRate.N(parameter.ThunderDuration)

	total := 0
	buf := make([][2]float64, 4096)
	for {
		n, ok := th.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			require.LessOrEqual(t, math.Abs(s[0]), 1.0)
		}
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, want, total)
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := newEnvelope(ones, 100*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond, rate)

	buf, n := drain(env, 200)
	assert.Equal(t, 100, n)
	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[5][0], 1e-9)
	assert.Equal(t, 1.0, buf[30][0])
	assert.InDelta(t, 0.5, buf[75][0], 1e-9)
}

func TestSetVolume(t *testing.T) {
	v := newVolume(NewHiss(1), 0.5)
	assert.False(t, v.Silent)
	assert.InDelta(t, -1.0, v.Volume, 1e-12)

	setVolume(v, math.NaN())
	assert.True(t, v.Silent)
}
