package utils

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewApplicationLoggerHonorsAtomicLevel(t *testing.T) {
	level := NewDefaultLogLevel()
	logger, loggerError := NewApplicationLogger(level)
	if loggerError != nil {
		t.Fatalf("NewApplicationLogger error: %v", loggerError)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be disabled at the default level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("expected warnings to be enabled at the default level")
	}
	level.SetLevel(zapcore.DebugLevel)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be enabled after lowering the level")
	}
}
