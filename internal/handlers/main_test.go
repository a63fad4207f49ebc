package handlers_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

var testLogger *slog.Logger

func TestMain(m *testing.M) {
	level := slog.LevelError
	if os.Getenv("TEST_LOG") != "" {
		level = slog.LevelDebug
	}
	var out io.Writer = io.Discard
	if level == slog.LevelDebug {
		out = os.Stderr
	}
	testLogger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(testLogger)

	os.Exit(m.Run())
}
