// Package logging installs the process-wide slog logger.
//
// LOG_LEVEL selects debug, info, warn or error (default info). LOG_FORMAT=json
// switches from the colored tint handler to JSON lines.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a logger on stderr configured from the environment.
func Setup() {
	SetupWithLevel(LevelFromEnv())
}

func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level, strings.EqualFold(os.Getenv("LOG_FORMAT"), "json")))
}

// New builds a logger writing to w.
func New(w io.Writer, level slog.Level, json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    w != os.Stderr && w != os.Stdout,
	}))
}

func LevelFromEnv() slog.Level {
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
