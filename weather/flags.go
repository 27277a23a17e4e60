package weather

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// floatFlag is an optional float, nil until set on the command line
type floatFlag struct {
	v *float64
}

func (f *floatFlag) String() string {
	if f == nil || f.v == nil {
		return ""
	}
	return strconv.FormatFloat(*f.v, 'g', -1, 64)
}

func (f *floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v = &v
	return nil
}

// intFlag is an optional int, nil until set on the command line
type intFlag struct {
	v *int
}

func (f *intFlag) String() string {
	if f == nil || f.v == nil {
		return ""
	}
	return strconv.Itoa(*f.v)
}

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.v = &v
	return nil
}

// Overrides collects observation fields given as flags
type Overrides struct {
	code          intFlag
	precipitation floatFlag
	visibility    floatFlag
	windSpeed     floatFlag
	windDirection floatFlag
}

// Register binds the override flags to fs
func (o *Overrides) Register(fs *flag.FlagSet) {
	fs.Var(&o.code, "code", "WMO weather code")
	fs.Var(&o.precipitation, "precip", "precipitation in mm")
	fs.Var(&o.visibility, "visibility", "visibility in metres")
	fs.Var(&o.windSpeed, "wind-speed", "10 m wind speed in km/h")
	fs.Var(&o.windDirection, "wind-dir", "10 m wind direction in degrees (from)")
}

// Apply returns a new observation: base with every set flag replacing its field
func (o *Overrides) Apply(base Observation) *Observation {
	out := base
	if o.code.v != nil {
		out.WeatherCode = Int(*o.code.v)
	}
	if o.precipitation.v != nil {
		out.Precipitation = Float(*o.precipitation.v)
	}
	if o.visibility.v != nil {
		out.Visibility = Float(*o.visibility.v)
	}
	if o.windSpeed.v != nil {
		out.WindSpeed10m = Float(*o.windSpeed.v)
	}
	if o.windDirection.v != nil {
		out.WindDirection10m = Float(*o.windDirection.v)
	}
	return &out
}

// Load reads an observation file, see Decode for accepted layouts
func Load(path string) (*Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observation: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Resolve picks the base observation from a file or a named preset, then applies overrides
func (o *Overrides) Resolve(path, preset string) (*Observation, error) {
	if path != "" {
		base, err := Load(path)
		if err != nil {
			return nil, err
		}
		return o.Apply(*base), nil
	}
	idx, err := PresetIndex(preset)
	if err != nil {
		return nil, err
	}
	return o.Apply(Presets[idx].Observation), nil
}
