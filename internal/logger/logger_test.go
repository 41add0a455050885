package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitToJSON(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "info", true)
	slog.Info("wave started", "wave", 3)
	if !strings.Contains(buf.String(), `"wave":3`) {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}
