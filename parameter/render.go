package parameter

// Vignette geometry, fractions of surface size
const (
	VignetteCenterX     = 0.5
	VignetteCenterY     = 0.15
	VignetteInnerRadius = 50.0
)

// Rain and storm streaks
const (
	StreakDriftScale = 0.02
	StreakLengthBase = 14.0
	StreakLengthZ    = 22.0
	StreakWidthBase  = 1.0
	StreakWidthZ     = 0.8
)

// Snow flakes
const (
	FlakeRadiusBase = 0.8
	FlakeRadiusZ    = 2.2
	FlakeAlphaBase  = 0.22
	FlakeAlphaZ     = 0.35
)

// Ambient dust for clear and fog scenes
const (
	DustRadiusBase     = 0.6
	DustRadiusZ        = 1.4
	DustAlphaZ         = 0.10
	DustFogAlphaBase   = 0.06
	DustClearAlphaBase = 0.05
)

// Fog bands, top edge and height as fractions of surface height
const (
	FogNearBandTop    = 0.58
	FogNearBandHeight = 0.42
	FogFarBandTop     = 0.40
	FogFarBandHeight  = 0.60
)

// Lightning strobe
const (
	FlashFrequency = 0.9
	FlashThreshold = 0.999
	FlashAlpha     = 0.12
)

// Fog band alphas
const (
	FogNearBandAlpha = 0.06
	FogFarBandAlpha  = 0.04
)
