// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a config level name to a slog level. Unknown names are
// reported with ok=false and yield Info.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New returns a tint logger when appEnv is "dev" and a JSON logger with
// source locations otherwise. Both write to stderr.
func New(levelName, appEnv string) *slog.Logger {
	return NewWithWriter(os.Stderr, levelName, appEnv)
}

func NewWithWriter(w io.Writer, levelName, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	level, ok := ParseLevel(levelName)
	logLevel.Set(level)

	var handler slog.Handler
	if strings.EqualFold(appEnv, "dev") {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", levelName))
	}
	return logger
}
