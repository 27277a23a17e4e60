// Package config loads runtime settings from the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, populated from environment variables
type Config struct {
	FPS        int
	PixelRatio float64
	WindScale  float64

	// Seed of 0 selects a time-based seed
	Seed  uint64
	Audio bool

	LogFile  string
	LogLevel string

	// MetricsAddr enables the Prometheus endpoint when non-empty
	MetricsAddr string
}

// Validation errors
var (
	ErrInvalidFPS        = errors.New("SCENE_FPS must be an integer in 1..240")
	ErrInvalidPixelRatio = errors.New("SCENE_PIXEL_RATIO must be a positive number")
	ErrInvalidWindScale  = errors.New("SCENE_WIND_SCALE must be a non-negative number")
	ErrInvalidSeed       = errors.New("SCENE_SEED must be an unsigned integer")
	ErrInvalidAudio      = errors.New("SCENE_AUDIO must be a boolean")
	ErrInvalidLogLevel   = errors.New("SCENE_LOG_LEVEL must be one of debug, info, warn, error")
)

// Load reads configuration from an optional .env file and the environment, applying
// defaults where unset
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	fps, err := strconv.Atoi(envOrDefault("SCENE_FPS", "60"))
	if err != nil || fps < 1 || fps > 240 {
		return nil, ErrInvalidFPS
	}

	ratio, err := strconv.ParseFloat(envOrDefault("SCENE_PIXEL_RATIO", "2"), 64)
	if err != nil || !(ratio > 0) || math.IsInf(ratio, 0) {
		return nil, ErrInvalidPixelRatio
	}

	windScale, err := strconv.ParseFloat(envOrDefault("SCENE_WIND_SCALE", "18"), 64)
	if err != nil || !(windScale >= 0) || math.IsInf(windScale, 0) {
		return nil, ErrInvalidWindScale
	}

	seed, err := strconv.ParseUint(envOrDefault("SCENE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, ErrInvalidSeed
	}

	audio, err := strconv.ParseBool(envOrDefault("SCENE_AUDIO", "false"))
	if err != nil {
		return nil, ErrInvalidAudio
	}

	level := strings.ToLower(envOrDefault("SCENE_LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, ErrInvalidLogLevel
	}

	return &Config{
		FPS:         fps,
		PixelRatio:  ratio,
		WindScale:   windScale,
		Seed:        seed,
		Audio:       audio,
		LogFile:     os.Getenv("SCENE_LOG_FILE"),
		LogLevel:    level,
		MetricsAddr: os.Getenv("SCENE_METRICS_ADDR"),
	}, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
