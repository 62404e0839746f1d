// Package logging configures structured logging for the whole application.
//
// Output goes to stderr through the tint handler so local development gets
// readable colored logs while everything still flows through log/slog.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger at the level named by the
// LOG_LEVEL environment variable (default: info).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel installs the default slog logger at an explicit level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
