// Package weather holds the current-conditions record consumed by the scene engine.
//
// Every field is optional. Decoding is tolerant: a field that is missing, null, or not a
// JSON number decodes as absent instead of failing the whole record, so a partial
// upstream payload still drives a (neutral) scene.
package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Observation is a current weather reading. Nil fields are absent
type Observation struct {
	WeatherCode      *int     `json:"weather_code,omitempty"`
	Precipitation    *float64 `json:"precipitation,omitempty"`      // mm
	Visibility       *float64 `json:"visibility,omitempty"`         // m
	WindSpeed10m     *float64 `json:"wind_speed_10m,omitempty"`     // km/h
	WindDirection10m *float64 `json:"wind_direction_10m,omitempty"` // degrees, "from" bearing
}

// Int returns a pointer to v, for building observations in code
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building observations in code
func Float(v float64) *float64 { return &v }

// UnmarshalJSON decodes known fields leniently, ignoring unknown ones
func (o *Observation) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode observation: %w", err)
	}

	*o = Observation{
		WeatherCode:      intField(raw["weather_code"]),
		Precipitation:    numberField(raw["precipitation"]),
		Visibility:       numberField(raw["visibility"]),
		WindSpeed10m:     numberField(raw["wind_speed_10m"]),
		WindDirection10m: numberField(raw["wind_direction_10m"]),
	}
	return nil
}

// numberField returns nil for anything that is not a JSON number
func numberField(raw json.RawMessage) *float64 {
	// null unmarshals into a float64 without error
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

// intField accepts integral numbers only, 45 and 45.0 both decode as 45
func intField(raw json.RawMessage) *int {
	f := numberField(raw)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > math.MaxInt32 {
		return nil
	}
	v := int(*f)
	return &v
}

// Decode reads an observation from r. Accepts either a bare observation object or a
// forecast document carrying it under "current"
func Decode(r io.Reader) (*Observation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read observation: %w", err)
	}
	data = bytes.TrimSpace(data)

	var envelope struct {
		Current json.RawMessage `json:"current"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode observation: %w", err)
	}
	if len(envelope.Current) > 0 && !bytes.Equal(envelope.Current, []byte("null")) {
		data = envelope.Current
	}

	var obs Observation
	if err := json.Unmarshal(data, &obs); err != nil {
		return nil, err
	}
	return &obs, nil
}

// FogLikely reports fog codes or visibility under one kilometre
func FogLikely(o *Observation) bool {
	if o == nil {
		return false
	}
	if o.WeatherCode != nil && IsFogCode(*o.WeatherCode) {
		return true
	}
	return o.Visibility != nil && *o.Visibility < 1000
}
