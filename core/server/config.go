package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API unprotected.
	ApiKey string `mapstructure:"api_key" default:""`
	// ShutdownTimeoutSeconds bounds how long in-flight runs may take once a signal arrives.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"30"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// Validate checks the port is a usable TCP port number.
func (c Config) Validate() error {
	var p int
	if _, err := fmt.Sscanf(c.Port, "%d", &p); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}
