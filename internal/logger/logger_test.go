package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/study-time-planner/internal/config"
	"github.com/Tiliavir/study-time-planner/internal/logger"
)

func TestNewHonoursLevel(t *testing.T) {
	l, err := logger.New(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFallsBackToWarn(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		l, err := logger.New(config.LogConfig{Level: level, Format: "console"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel), "level %q", level)
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel), "level %q", level)
	}
}
