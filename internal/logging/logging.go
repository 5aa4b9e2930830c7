// Package logging builds the zerolog logger used across the application.
//
// The TUI owns the terminal, so log lines go to a file. With no file
// configured every logger is a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// ParseLevel converts a config value ("debug", "info", "warn", "error") to a
// zerolog level. Empty means info.
func ParseLevel(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: level %q: %w", raw, err)
	}
	return lvl, nil
}

// New returns a JSON logger writing to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Open creates the parent directory of path, opens it for appending and
// returns a logger plus the file to close on exit. An empty path yields a
// disabled logger and a nil closer.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), nil, nil
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, defaultFileMode)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: open: %w", err)
	}
	return New(f, lvl), f, nil
}

// Component tags every event of l with the emitting package.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
