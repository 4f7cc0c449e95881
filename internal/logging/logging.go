// Package logging configures the CLI's zerolog console logger.
//
// Diagnostics go to stderr so the demo output on stdout stays clean enough
// to diff against the expected transcript.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the log level (zerolog level names).
const EnvLogLevel = "ESTRUCTURA_LOG_LEVEL"

// New returns a console logger for the named app. Verbose selects debug
// level; the environment variable wins over both.
func New(app string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
