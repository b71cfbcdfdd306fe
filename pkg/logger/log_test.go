package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if !Logger().Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug to be enabled")
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
