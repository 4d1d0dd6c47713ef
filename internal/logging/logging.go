// Package logging configures zerolog for nsemit.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures Setup.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values mean warn.
	Level string

	// JSON selects structured JSON output instead of the console writer.
	JSON bool

	// Out is where logs are written. Defaults to os.Stderr.
	Out io.Writer
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// LevelForVerbosity maps the -v count to info, debug or trace.
// The result is never less verbose than base.
func LevelForVerbosity(base string, verbosity int) string {
	var level string
	switch {
	case verbosity <= 0:
		return base
	case verbosity == 1:
		level = "info"
	case verbosity == 2:
		level = "debug"
	default:
		level = "trace"
	}

	// Never less verbose than configured
	if ParseLevel(base) < ParseLevel(level) {
		return base
	}
	return level
}

// Setup configures the global logger and returns it.
func Setup(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)

	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()

	// Caller information for debug and trace
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	log.Logger = logger
	log.Debug().Str("level", level.String()).Bool("json", opts.JSON).Msg("Logger initialized")

	return logger
}

// GetLogger returns a contextualized logger with the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
