package parameter

// Mode selection thresholds
const (
	// FogVisibilityMeters is the visibility below which an uncoded observation renders as fog
	FogVisibilityMeters = 1200.0
	// RainPrecipitationMM is the precipitation above which an uncoded observation renders as rain
	RainPrecipitationMM = 0.1
)

// Intensity derived from precipitation
const (
	IntensityMin = 0.15
	IntensityMax = 1.0
	// IntensityPrecipScale maps mm of precipitation to full intensity
	IntensityPrecipScale = 3.0
)

// Wind
const (
	// KmhPerMs converts reported km/h to m/s
	KmhPerMs = 3.6
	// DefaultWindScale is drift px/s per m/s of wind
	DefaultWindScale = 18.0
	// WindBearingFlip turns a meteorological "from" bearing into a drift "to" bearing
	WindBearingFlip = 180.0
)

// Pool sizing, particles at full intensity
const (
	SnowParticlesMax  = 220
	RainParticlesMax  = 260
	StormParticlesMax = 320
	FogParticles      = 80
	ClearParticles    = 60
)

// Particle spawn
const (
	RainBaseSpeed    = 160.0
	SnowBaseSpeed    = 60.0
	AmbientBaseSpeed = 30.0
	// SpeedDepthOffset keeps far particles moving
	SpeedDepthOffset = 0.25
	SeedRange        = 1000.0
)

// Drift integration
const (
	// MaxFrameDelta caps dt in seconds, absorbs stalls and tab/terminal resume jumps
	MaxFrameDelta = 0.033

	DepthBase  = 0.25
	DepthScale = 0.95

	SnowTurbulence      = 14.0
	DefaultTurbulence   = 2.0
	TurbulenceFrequency = 1.2

	WindDriftDepthOffset = 0.15
	WindDriftVertical    = 0.05

	// RespawnMarginY is how far below the bottom edge a particle travels before re-seeding at the top
	RespawnMarginY = 20.0
	// WrapMarginX is the horizontal overshoot before wrapping to the opposite side
	WrapMarginX = 40.0
)

// Backing store
const (
	PixelRatioMin = 1.0
	PixelRatioMax = 2.0
)
