package cmd

import (
	"fmt"
	"os"

	"greeting-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel  string
	logFormat string
)

// RootCmd represents the base command: it starts the greeting server.
var RootCmd = &cobra.Command{
	Use:   "greeting-server [port]",
	Short: "Greeting HTTP server",
	Long: `Greeting server answers GET / with "Hello, World!, port: <port>".
The optional port argument defaults to 5000.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runServer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 output on stderr
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format override (console, json)")
}
