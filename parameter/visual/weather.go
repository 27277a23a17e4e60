package visual

import (
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/scene"
)

// Sky backdrop, top to bottom
var (
	SkyTop    = render.MustHex("#0b1220", 1)
	SkyBottom = render.MustHex("#16233a", 1)
)

// Vignette inner stops per mode, the outer stop is fully transparent
var (
	VignetteStorm   = render.MustHex("#96aaff", 0.08)
	VignetteFog     = render.MustHex("#c8dcff", 0.10)
	VignetteDefault = render.MustHex("#6ee7ff", 0.10)
	VignetteOuter   = render.RGBA(0, 0, 0, 0)
)

// Particle colors, alpha is applied per particle where depth dependent
var (
	StreakRain  = render.MustHex("#c8e6ff", 0.25)
	StreakStorm = render.MustHex("#a0beff", 0.35)
	Flake       = render.MustHex("#ffffff", 1)
	DustFog     = render.MustHex("#e6f5ff", 1)
	DustClear   = render.MustHex("#ffffff", 1)
)

// Overlays
var (
	FogBand = render.MustHex("#dcebff", 1)
	Flash   = render.MustHex("#b4d2ff", 1)
)

// VignetteColor returns the inner vignette stop for a mode
func VignetteColor(m scene.Mode) render.Color {
	switch m {
	case scene.ModeStorm:
		return VignetteStorm
	case scene.ModeFog:
		return VignetteFog
	default:
		return VignetteDefault
	}
}

// StreakColor returns the precipitation streak color, storms are brighter and bluer
func StreakColor(m scene.Mode) render.Color {
	if m == scene.ModeStorm {
		return StreakStorm
	}
	return StreakRain
}
