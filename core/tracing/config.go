package tracing

// Config holds configuration for OpenTelemetry tracing.
type Config struct {
	// Enabled turns on span export. When false a noop provider is used.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the OTLP/HTTP collector address (host:port).
	Endpoint string `mapstructure:"endpoint" default:"localhost:4318"`
	// Insecure disables TLS towards the collector.
	Insecure bool `mapstructure:"insecure" default:"true"`
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `mapstructure:"service_name" default:"greeting-server"`
	// Environment is reported as the environment resource attribute.
	Environment string `mapstructure:"environment" default:"development"`
}
