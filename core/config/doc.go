// Package config provides configuration management for the greeting server.
//
// It utilizes Viper for loading configuration from environment variables, optionally
// seeded from a .env file through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: shutdown timeout (the port itself only comes from the command line)
//   - Log: Logging level and format
//   - Tracing: OpenTelemetry exporter settings
//
// Defaults come from the `default` struct tags of each subsection. Keys map to
// upper-cased environment variables with dots replaced by underscores (log.level -> LOG_LEVEL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Log.Level)
package config
