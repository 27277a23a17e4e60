package weather

// WMO weather interpretation codes as reported by Open-Meteo
var codeText = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Rime fog",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Dense drizzle",
	56: "Freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Rain",
	65: "Heavy rain",
	66: "Freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Rain showers",
	82: "Violent rain showers",
	85: "Snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the human-readable condition for a WMO code, empty if unknown
func Describe(code int) string {
	return codeText[code]
}

// IsFogCode reports the two fog codes
func IsFogCode(code int) bool {
	return code == 45 || code == 48
}

// Conditions describes the observation's code, empty when absent or unknown
func (o *Observation) Conditions() string {
	if o == nil || o.WeatherCode == nil {
		return ""
	}
	return Describe(*o.WeatherCode)
}
