// Package scene resolves a weather observation into the parameters that drive the
// visualization: a discrete mode, a normalized intensity, and a wind drift vector.
package scene

import (
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/weather-scene/parameter"
	"github.com/lixenwraith/weather-scene/vmath"
	"github.com/lixenwraith/weather-scene/weather"
)

// Mode is the visual weather category
type Mode uint8

const (
	ModeClear Mode = iota
	ModeFog
	ModeRain
	ModeSnow
	ModeStorm
)

var modeNames = [...]string{
	ModeClear: "clear",
	ModeFog:   "fog",
	ModeRain:  "rain",
	ModeSnow:  "snow",
	ModeStorm: "storm",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode maps a mode name back to its Mode
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return ModeClear, fmt.Errorf("unknown scene mode %q", name)
}

// WMO code groups, checked in this order
var (
	fogCodes   = []int{45, 48}
	snowCodes  = []int{71, 73, 75, 77, 85, 86}
	rainCodes  = []int{51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82}
	stormCodes = []int{95, 96, 99}
)

// Params is the resolved scene. Treat as immutable; pointer identity marks a change
type Params struct {
	Mode      Mode
	Intensity float64
	Wind      vmath.Vec2 // px/s
}

// finite unwraps an optional reading, discarding NaN and Inf
func finite(p *float64) (float64, bool) {
	if p == nil || !vmath.IsFinite(*p) {
		return 0, false
	}
	return *p, true
}

// ChooseMode applies the mode rules, first match wins
func ChooseMode(o *weather.Observation) Mode {
	if o == nil {
		return ModeClear
	}

	if o.WeatherCode != nil {
		code := *o.WeatherCode
		switch {
		case slices.Contains(fogCodes, code):
			return ModeFog
		case slices.Contains(snowCodes, code):
			return ModeSnow
		case slices.Contains(rainCodes, code):
			return ModeRain
		case slices.Contains(stormCodes, code):
			return ModeStorm
		}
	}

	if vis, ok := finite(o.Visibility); ok && vis < parameter.FogVisibilityMeters {
		return ModeFog
	}
	if precip, ok := finite(o.Precipitation); ok && precip > parameter.RainPrecipitationMM {
		return ModeRain
	}
	return ModeClear
}

// Intensity maps precipitation in mm to [IntensityMin, IntensityMax]
func Intensity(o *weather.Observation) float64 {
	var precip float64
	if o != nil {
		precip, _ = finite(o.Precipitation)
	}
	return vmath.Clamp(precip/parameter.IntensityPrecipScale, parameter.IntensityMin, parameter.IntensityMax)
}

// WindVector converts a "from" bearing in degrees and a drift magnitude in px/s into a
// drift vector pointing where the wind blows to. Non-finite input yields zero wind
func WindVector(fromDeg, magnitude float64) vmath.Vec2 {
	if !vmath.IsFinite(fromDeg) || !vmath.IsFinite(magnitude) {
		return vmath.Vec2{}
	}
	rad := vmath.Radians(fromDeg + parameter.WindBearingFlip)
	return vmath.Vec2{
		X: math.Sin(rad) * magnitude,
		Y: math.Cos(rad) * magnitude,
	}
}

// Resolve derives scene parameters. windScale is drift px/s per m/s of wind
func Resolve(o *weather.Observation, windScale float64) Params {
	p := Params{
		Mode:      ChooseMode(o),
		Intensity: Intensity(o),
	}
	if o == nil {
		return p
	}

	dir, ok := finite(o.WindDirection10m)
	if !ok {
		return p
	}
	speed, _ := finite(o.WindSpeed10m)
	p.Wind = WindVector(dir, speed/parameter.KmhPerMs*windScale)
	return p
}

// Resolver memoizes Resolve on observation identity
type Resolver struct {
	windScale float64
	last      *weather.Observation
	params    *Params
}

// NewResolver creates a resolver, a negative or non-finite scale falls back to the default
func NewResolver(windScale float64) *Resolver {
	if !vmath.IsFinite(windScale) || windScale < 0 {
		windScale = parameter.DefaultWindScale
	}
	return &Resolver{windScale: windScale}
}

// Resolve returns the cached parameters while o is the same pointer as last call,
// otherwise a freshly allocated *Params
func (r *Resolver) Resolve(o *weather.Observation) *Params {
	if r.params != nil && o == r.last {
		return r.params
	}
	p := Resolve(o, r.windScale)
	r.last = o
	r.params = &p
	return r.params
}
