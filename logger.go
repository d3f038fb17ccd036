package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// log is the package logger. Recovered errors are reported at debug level,
// which the default "warn" setting hides.
var log = newLogger(os.Stderr, slog.LevelWarn)

// newLogger returns a text logger writing records at or above level to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLevel maps a level name ("debug", "info", "warn", "error") to a slog.Level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
