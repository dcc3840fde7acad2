package metrics

// Config holds configuration for the metrics registry.
type Config struct {
	// Enabled exposes Prometheus metrics on /metrics when true.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
