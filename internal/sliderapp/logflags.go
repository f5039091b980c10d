package sliderapp

import (
	"io"
	"log/slog"
)

var logLevel = new(slog.LevelVar)

// SetTraceLogEnabled toggles debug logging of drag state and value changes.
func SetTraceLogEnabled(b bool) {
	if b {
		logLevel.Set(slog.LevelDebug)
		return
	}
	logLevel.Set(slog.LevelInfo)
}

// NewLogger returns a text logger writing to w whose level follows
// SetTraceLogEnabled.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
