package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"greeting-server/core/logger"
	"greeting-server/core/server"
	"greeting-server/core/tracing"

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
	// Tracing holds configuration for OpenTelemetry tracing.
	Tracing tracing.Config `mapstructure:"tracing"`
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Recursively parse struct tags to set default values and bind env keys
	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. Fields tagged env:"-" are never read
// from the environment.
func bindValues(v *viper.Viper, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) so the key is known to Unmarshal
		v.SetDefault(key, field.Tag.Get("default"))

		if field.Tag.Get("env") == "-" {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	return nil
}
