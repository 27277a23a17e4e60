package weather

import (
	"fmt"
	"strings"
)

// Preset is a named sample observation
type Preset struct {
	Name        string
	Observation Observation
}

// Presets holds one sample per scene mode, in key order 1-5.
// Index into the slice when a stable *Observation identity is needed
var Presets = []Preset{
	{Name: "clear", Observation: Observation{
		WeatherCode:      Int(0),
		Precipitation:    Float(0),
		Visibility:       Float(24000),
		WindSpeed10m:     Float(8),
		WindDirection10m: Float(270),
	}},
	{Name: "fog", Observation: Observation{
		WeatherCode:      Int(45),
		Precipitation:    Float(0),
		Visibility:       Float(300),
		WindSpeed10m:     Float(4),
		WindDirection10m: Float(180),
	}},
	{Name: "rain", Observation: Observation{
		WeatherCode:      Int(63),
		Precipitation:    Float(2.4),
		Visibility:       Float(8000),
		WindSpeed10m:     Float(25),
		WindDirection10m: Float(250),
	}},
	{Name: "snow", Observation: Observation{
		WeatherCode:      Int(73),
		Precipitation:    Float(1.5),
		Visibility:       Float(2500),
		WindSpeed10m:     Float(12),
		WindDirection10m: Float(340),
	}},
	{Name: "storm", Observation: Observation{
		WeatherCode:      Int(95),
		Precipitation:    Float(4.2),
		Visibility:       Float(5000),
		WindSpeed10m:     Float(40),
		WindDirection10m: Float(200),
	}},
}

// PresetIndex finds a preset by case-insensitive name
func PresetIndex(name string) (int, error) {
	for i := range Presets {
		if strings.EqualFold(Presets[i].Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown preset %q", name)
}
