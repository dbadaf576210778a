package app

import (
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LogLevelWarn, &buf)

	log.Debug("quiet")
	log.Info("quiet")
	log.Warn("loud")
	log.Error("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if strings.Count(out, "loud") != 2 {
		t.Errorf("expected two messages, got: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LogLevelInfo, &buf).
		WithField("session", "abc").
		WithField("driver", "memory")

	log.Info("ready")

	out := buf.String()
	for _, want := range []string{"INFO", "ready", "driver=memory", "session=abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	parent := NewLogger(LogLevelInfo, &buf)
	_ = parent.WithField("child", "only")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "child=only") {
		t.Error("child field leaked into parent logger")
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LogLevelInfo, &buf)
	log.Info("key %d down", 7)
	if !strings.Contains(buf.String(), "key 7 down") {
		t.Errorf("formatting failed: %q", buf.String())
	}
}
