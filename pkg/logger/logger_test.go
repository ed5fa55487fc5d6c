package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"summer-success/tracker/config"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, _, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetLevel(t *testing.T) {
	log, atom, err := NewLogger(&config.LogConfig{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer log.Sync()

	if !SetLevel(atom, "debug") {
		t.Error("expected level change to debug")
	}
	if atom.Level() != zapcore.DebugLevel {
		t.Errorf("expected debug, got %s", atom.Level())
	}
	if SetLevel(atom, "debug") {
		t.Error("same level should report no change")
	}
	if SetLevel(atom, "nonsense") {
		t.Error("unknown level should be ignored")
	}
}
