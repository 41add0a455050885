// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the process-wide slog handler.
func Init(level string, jsonFormat bool) {
	InitTo(os.Stdout, level, jsonFormat)
}

func InitTo(w io.Writer, level string, jsonFormat bool) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.With("component", "logger").Debug("Logger initialized",
		"level", level,
		"json_format", jsonFormat,
	)
}

func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
