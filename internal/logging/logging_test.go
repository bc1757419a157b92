package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewBuildsLogger(t *testing.T) {
	log, err := New()
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
}
