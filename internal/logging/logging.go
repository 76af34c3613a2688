// Package logging builds the structured loggers used by the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/missiles/internal/config"
)

// New creates a logger writing to w with timestamps and the given prefix.
// The level comes from LOG_LEVEL and defaults to info.
func New(prefix string, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           Level(config.GetEnv("LOG_LEVEL", "info")),
	})
}

// Level parses a level name, falling back to info for unknown names.
func Level(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Output returns the writer named by LOG_FILE, or fallback when unset.
// The returned close function is always safe to call.
func Output(fallback io.Writer) (io.Writer, func() error, error) {
	path := config.GetEnv("LOG_FILE", "")
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fallback, func() error { return nil }, err
	}
	return f, f.Close, nil
}
