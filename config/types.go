package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DataConfig locates the station and trip datasets. Each source may be a
// local file path or an http(s) URL.
type DataConfig struct {
	StationsSource string `yaml:"stationsSource" validate:"required"`
	TripsSource    string `yaml:"tripsSource" validate:"required"`
	TripCachePath  string `yaml:"tripCachePath"`
}

// FilterConfig controls the time-of-day window applied to the trip log.
type FilterConfig struct {
	WindowMinutes int `yaml:"windowMinutes" validate:"gte=0"`
}

// RadiusConfig holds the two radius range presets used by the scale:
// Base applies when no time filter is active, Filtered when one is.
type RadiusConfig struct {
	BaseMin     float64 `yaml:"baseMin" validate:"gte=0"`
	BaseMax     float64 `yaml:"baseMax" validate:"gte=0"`
	FilteredMin float64 `yaml:"filteredMin" validate:"gte=0"`
	FilteredMax float64 `yaml:"filteredMax" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Filter FilterConfig `yaml:"filter"`
	Radius RadiusConfig `yaml:"radius"`
}
