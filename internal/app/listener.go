// internal/app/listener.go
package app

import (
	"context"
	"log/slog"

	"go-core-defense/internal/event"
)

// LogListener пишет события симуляции в журнал slog.
type LogListener struct {
	log *slog.Logger
}

func NewLogListener() *LogListener {
	return &LogListener{log: slog.With("component", "events")}
}

func (l *LogListener) OnEvent(e event.Event) {
	level := slog.LevelDebug
	switch e.Type {
	case event.WaveStarted, event.WaveCleared, event.GameOver, event.SiloLaunched:
		level = slog.LevelInfo
	}
	args := []any{"type", e.Type, "frame", e.Frame}
	for k, v := range e.Data {
		args = append(args, k, v)
	}
	l.log.Log(context.Background(), level, "event", args...)
}
