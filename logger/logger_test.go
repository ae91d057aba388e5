package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity),
			"verbosity %d", tt.verbosity)
	}
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(VerbosityInfo))
	require.NotNil(t, Logger)

	// Package-level helpers must not panic after initialization
	Infow("test message", "key", "value")
	Warnw("test warning")
	Cleanup()
}

func TestLoggerUsableBeforeInitialize(t *testing.T) {
	// The init() no-op logger must absorb calls silently
	Debugw("before initialize")
	Infof("before initialize %d", 1)
}
