// Package log configures the CLI's structured logger. Engine packages stay
// pure and never log; only commands and their collaborators use this.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// envLevel selects the log level, e.g. POCKETBOOK_LOG=debug.
const envLevel = "POCKETBOOK_LOG"

// New returns a logger tagged with a component attribute. The level comes
// from the environment and defaults to warn so normal CLI output stays clean.
func New(component string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler).With("component", component)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(envLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
