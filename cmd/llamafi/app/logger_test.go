package app

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{"default", Config{}, "info"},
		{"verbose sets debug", Config{Verbose: true}, "debug"},
		{"quiet sets warn", Config{Quiet: true}, "warn"},
		{"both prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level overrides verbose", Config{LogLevel: "error", Verbose: true}, "error"},
		{"explicit level overrides quiet", Config{LogLevel: "trace", Quiet: true}, "trace"},
		{"invalid level falls back to info", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests log level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q", level, got)
		}
	}
	for _, level := range []string{"", "DEBUG", "Debug", "fatal"} {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%q) = %q, expected info", level, got)
		}
	}
}

// TestNewLogger tests that the logger honours the resolved level.
func TestNewLogger(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })

	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	logger = NewLogger(&Config{Verbose: true, LogFormat: "json", LogOutput: "discard"})
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}
