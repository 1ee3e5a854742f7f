package app

import (
	"io"
	"log/slog"
)

// appName tags every record so that seedgrid output can be told apart when
// several tools share a log stream.
const appName = "seedgrid"

// newLogger creates an isolated slog.Logger writing text or JSON records to
// outW. It never touches the global logger. Unknown levels fall back to info.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("app", appName)
}
