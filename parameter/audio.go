package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Rain hiss: low-passed noise whose volume follows precipitation intensity
const (
	HissLowpass     = 0.35
	RainHissVolume  = 0.30
	StormHissVolume = 0.45
)

// Thunder: a rumble fired on each lightning flash rising edge
const (
	ThunderDuration = 1800 * time.Millisecond
	ThunderAttack   = 20 * time.Millisecond
	ThunderRelease  = 1500 * time.Millisecond
	ThunderLowpass  = 0.02
	ThunderVolume   = 0.8
)
