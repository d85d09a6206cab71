package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/sitebridge/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. LOG_LEVEL environment variable
//  5. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	var logger zerolog.Logger
	if config.LogFormat == "json" {
		logger = logging.NewJSON(os.Stderr)
	} else {
		logger = logging.NewConsole()
	}

	return logger.Level(parsed)
}

// determineLogLevel determines the log level using clear precedence rules.
func determineLogLevel(config *Config) string {
	// 1. Explicit --log-level always wins
	if config.LogLevel != "" {
		return validateLogLevel(config.LogLevel)
	}

	// 2. Conflicting boolean flags: quiet is the more restrictive choice
	if config.Verbose && config.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}

	// 3. Boolean shortcuts
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	// 4. Default
	return "info"
}

// validateLogLevel validates a log level string, falling back to "info" for
// unrecognized input.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	default:
		fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using \"info\"\n", level)
		return "info"
	}
}
