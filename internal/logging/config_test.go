package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{raw: "", want: zerolog.InfoLevel, wantOK: false},
		{raw: "trace", want: zerolog.TraceLevel, wantOK: true},
		{raw: " DEBUG ", want: zerolog.DebugLevel, wantOK: true},
		{raw: "warning", want: zerolog.WarnLevel, wantOK: true},
		{raw: "off", want: zerolog.Disabled, wantOK: true},
		{raw: "loud", want: zerolog.InfoLevel, wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := parseLevel(tc.raw)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("parseLevel(%q) = %v,%v want %v,%v", tc.raw, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")
	t.Setenv(EnvLogBypass, "nope")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected no color")
	}
	if cfg.Bypass {
		t.Fatalf("unparseable bypass should keep default")
	}
}

func TestNewBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Bypass: true, Out: &buf})
	logger.Debug().Msg("hidden")
	logger.Info().Str("operation", "WarrantyStatus").Msg("gsx invoke")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, `"operation":"WarrantyStatus"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}
