// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the console logger of the converter.
func CreateLogger(debug, quiet bool) *log.Logger {
	return NewLogger(os.Stdout, debug, quiet)
}

// NewLogger creates a logger that writes to w. Debug output takes precedence
// over quiet mode, quiet mode only keeps errors.
func NewLogger(w io.Writer, debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = w
	cfg.Level = Level(debug, quiet, cfg.Level)
	return log.NewWithConfig(cfg)
}

// Level returns the log level for the debug and quiet flags, falling back
// to the given default.
func Level(debug, quiet bool, fallback log.Level) log.Level {
	switch {
	case debug:
		return log.DebugLevel
	case quiet:
		return log.ErrorLevel
	default:
		return fallback
	}
}
