package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"moonlit-scene/config"
)

func TestNewHonoursLevel(t *testing.T) {
	logger, err := New(config.Log{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New(config.Log{Dev: true, Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "chatty"})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	ctx := Context(context.Background(), logger)
	assert.Same(t, logger, From(ctx))

	sub, ctx := SubFrom(ctx, "render")
	sub.Info("frame")
	assert.Same(t, sub, From(ctx))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "render", logs.All()[0].LoggerName)
}

func TestFromWithoutLoggerIsNop(t *testing.T) {
	assert.NotPanics(t, func() { From(context.Background()).Info("dropped") })
}
