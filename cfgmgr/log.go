//go:build windows
// +build windows

package cfgmgr

import (
	"context"
	"log/slog"
	"os"
)

const (
	// Custom levels
	LogLevelTrace = slog.Level(-8)
)

// SetLoggerHandler sets a custom logger for the cfgmgr library
func SetLoggerHandler(h slog.Handler) {
	if h == nil {
		return // Keep default
	}
	slog.SetDefault(slog.New(h))
}

func SetLoggerLevel(level slog.Level) {
	slog.SetLogLoggerLevel(level)
}

func SetDebugLevel(addSource bool) {
	// Create text handler that writes to stderr
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: addSource,
	})

	// Set as default logger
	slog.SetDefault(slog.New(h))
}

// Logs trace messages, level = -8
func LogTrace(msg string, args ...any) {
	slog.Default().Log(context.Background(), LogLevelTrace, msg, args...)
}
