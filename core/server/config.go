package server

import "time"

// DefaultPort is used when no port argument is given.
const DefaultPort = 5000

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	// It is only ever set from the command line, never from the environment.
	Port int `mapstructure:"port" default:"5000" env:"-"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may take to finish on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// ShutdownTimeout returns the graceful shutdown window, falling back to 10s when unset.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// IsValidPort reports whether the port fits in the TCP port range.
func (c Config) IsValidPort() bool {
	return c.Port >= 0 && c.Port <= 65535
}
