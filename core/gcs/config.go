package gcs

// Config holds configuration for Cloud Storage asset folders.
type Config struct {
	// Enabled allows gs:// asset references. Credentials come from the environment.
	Enabled bool `mapstructure:"enabled" default:"false"`
}
