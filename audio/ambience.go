// Package audio synthesizes weather ambience: rain hiss scaled by intensity and thunder
// on lightning flashes
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Ambience is an engine.FrameObserver driving a mixer of hiss and thunder.
// It is itself the streamer handed to the speaker so mixer edits and playback share one lock
type Ambience struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	hiss     *effects.Volume
	hissVol  float64
	seed     uint64
	flashing bool
	thunders int
	started  bool
	logger   *slog.Logger
}

// NewAmbience creates a silent ambience, Start connects it to the speaker
func NewAmbience(seed uint64, logger *slog.Logger) *Ambience {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Ambience{
		mixer:  &beep.Mixer{},
		seed:   seed,
		logger: logger,
	}
	a.hiss = newVolume(NewHiss(seed), 0)
	a.mixer.Add(a.hiss)
	return a
}

// Start initializes the speaker and begins playback
func (a *Ambience) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(a)
	a.started = true
	return nil
}

// Close stops playback and releases the audio device
func (a *Ambience) Close() {
	a.mu.Lock()
	started := a.started
	a.started = false
	a.mixer.Clear()
	a.mu.Unlock()

	if started {
		speaker.Clear()
		speaker.Close()
	}
}

// Stream implements beep.Streamer
func (a *Ambience) Stream(samples [][2]float64) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mixer.Stream(samples)
}

// Err implements beep.Streamer
func (a *Ambience) Err() error { return nil }

// HissLevel returns the hiss gain for a mode and intensity
func HissLevel(m scene.Mode, intensity float64) float64 {
	switch m {
	case scene.ModeRain:
		return parameter.RainHissVolume * intensity
	case scene.ModeStorm:
		return parameter.StormHissVolume * intensity
	default:
		return 0
	}
}

// ObserveFrame implements engine.FrameObserver
func (a *Ambience) ObserveFrame(snap engine.Snapshot, _ time.Duration) {
	if snap.Params == nil {
		return
	}
	mode := snap.Params.Mode
	level := HissLevel(mode, snap.Params.Intensity)
	flash := mode == scene.ModeStorm && render.FlashAlpha(snap.Time) > 0

	a.mu.Lock()
	defer a.mu.Unlock()

	if math.Abs(level-a.hissVol) > 1e-9 {
		setVolume(a.hiss, level)
		a.hissVol = level
	}

	// Thunder on the rising edge only, the strobe stays lit for several frames
	if flash && !a.flashing {
		a.thunders++
		a.mixer.Add(NewThunder(sampleRate, a.seed+uint64(a.thunders)))
		a.logger.Debug("thunder", "sim_time", snap.Time)
	}
	a.flashing = flash
}

// HissVolume returns the current linear hiss gain
func (a *Ambience) HissVolume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hissVol
}

// Voices returns the number of active streamers including the hiss bed
func (a *Ambience) Voices() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mixer.Len()
}
