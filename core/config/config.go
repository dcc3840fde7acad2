package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"creative-sync/core/dv360"
	"creative-sync/core/gcs"
	"creative-sync/core/google"
	"creative-sync/core/lock"
	"creative-sync/core/logger"
	"creative-sync/core/metrics"
	"creative-sync/core/server"
	"creative-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Google holds credentials and spreadsheet coordinates.
	Google google.Config `mapstructure:"google"`
	// DV360 holds the Display & Video 360 API endpoints.
	DV360 dv360.Config `mapstructure:"dv360"`
	// Storage holds configuration for S3-compatible asset folders.
	Storage storage.Config `mapstructure:"storage"`
	// GCS holds configuration for Cloud Storage asset folders.
	GCS gcs.Config `mapstructure:"gcs"`
	// Lock holds configuration for the run lock.
	Lock lock.Config `mapstructure:"lock"`
	// Metrics holds configuration for the Prometheus registry.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. GOOGLE_SPREADSHEET_ID -> google.spreadsheet_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings every command needs before it talks to Google.
func (c *Config) Validate() error {
	var errs []error
	if c.Google.SpreadsheetID == "" {
		errs = append(errs, errors.New("google.spreadsheet_id is required"))
	}
	for name, sheet := range map[string]string{
		"google.feed_sheet":   c.Google.FeedSheet,
		"google.config_sheet": c.Google.ConfigSheet,
		"google.log_sheet":    c.Google.LogSheet,
	} {
		if sheet == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}
	if c.DV360.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("dv360.timeout_seconds must not be negative, got %d", c.DV360.TimeoutSeconds))
	}
	if c.Lock.TTLSeconds <= 0 {
		errs = append(errs, fmt.Errorf("lock.ttl_seconds must be positive, got %d", c.Lock.TTLSeconds))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
