// Package logging builds the zerolog loggers used by the graphsearch
// command. Library packages never log; they report through return
// values and the search trace hook instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error
	// or disabled. Default: info.
	Level string

	// Format is the output format: console or json.
	// Default: console.
	Format string

	// Timestamp adds a time field to every event.
	Timestamp bool

	// Output receives the log. Default: os.Stderr.
	Output io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		cw := zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: "15:04:05",
		}
		if !cfg.Timestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		out = cw
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q (want console or json)", cfg.Format)
	}
	logger := zerolog.New(out).Level(level)
	if cfg.Timestamp {
		logger = logger.With().Timestamp().Logger()
	}
	return logger, nil
}

// ParseLevel converts a level name to a zerolog.Level.
// The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}
