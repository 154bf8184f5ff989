package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", in, got, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Setenv("GO_ENV", "")
	var buf bytes.Buffer
	l := New("warn", &buf)
	l.Info("hidden")
	l.Warn("shown", "pulse", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "pulse=3") {
		t.Errorf("Expected warn line with attrs, got %q", out)
	}
}

func TestNewJSONInProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	var buf bytes.Buffer
	New("info", &buf).Info("ping")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("Expected JSON output, got %q", buf.String())
	}
}

func TestGlobalLoggerAvailable(t *testing.T) {
	if L() == nil {
		t.Fatal("Expected a global logger")
	}
	if With("session", "x") == nil {
		t.Error("Expected a derived logger")
	}
}
