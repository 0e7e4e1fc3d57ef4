package app

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, so each App logs through its own handler. Unknown
// levels fall back to info.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(logW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(logW, handlerOpts)
	}

	return slog.New(handler)
}
