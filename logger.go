package main

import (
	"log/slog"
	"os"
)

// NewLogger builds the application's structured JSON logger at the given
// level. Loggers are handed to components explicitly; nothing logs through
// the slog default.
func NewLogger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
