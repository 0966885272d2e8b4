// Package logging provides the optional debug logger. Transcript generation
// is a silent side channel, so nothing is ever written to the standard
// streams; setting SCRIBE_DEBUG to a file path enables a structured log
// there for troubleshooting.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// FromEnv returns a debug-level logger appending to $SCRIBE_DEBUG, or a
// discard logger when the variable is unset or the file cannot be opened.
func FromEnv() *slog.Logger {
	path := os.Getenv("SCRIBE_DEBUG")
	if path == "" {
		return Discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard()
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
