package dv360

// Config holds the Display & Video 360 API settings.
type Config struct {
	// Endpoint overrides the API root. Empty uses the displayvideo/v3 default.
	Endpoint string `mapstructure:"endpoint"`
	// TimeoutSeconds bounds each API round trip. Zero disables the bound.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
