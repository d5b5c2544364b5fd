package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })
	return logs
}

func TestInitialize(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Debug: true}))
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Default().Core().Enabled(zapcore.InfoLevel))
}

func TestCommandFields(t *testing.T) {
	logs := observe(t)

	ctx := WithCommand(context.Background(), CommandInfo{
		ID:        "cmd-1",
		ChannelID: "general",
		AuthorID:  "alice",
		Content:   "#12 Fidenza",
	})
	InfoCtx(ctx, "Resolved command", zap.Int64("token_id", 78000012))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "cmd-1", fields["command_id"])
	assert.Equal(t, "general", fields["channel_id"])
	assert.Equal(t, "alice", fields["author_id"])
	assert.Equal(t, "#12 Fidenza", fields["content"])
	assert.Equal(t, int64(78000012), fields["token_id"])
}

func TestCommandFromContext(t *testing.T) {
	_, ok := CommandFromContext(context.Background())
	assert.False(t, ok)

	_, ok = CommandFromContext(nil)
	assert.False(t, ok)

	info, ok := CommandFromContext(WithCommand(context.Background(), CommandInfo{ID: "x"}))
	require.True(t, ok)
	assert.Equal(t, "x", info.ID)
}

func TestError(t *testing.T) {
	logs := observe(t)

	Error(errors.New("catalog unavailable"))
	ErrorCtx(context.Background(), nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "catalog unavailable", logs.All()[0].Message)
	assert.Equal(t, "error occurred", logs.All()[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestWithService(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	withService(zap.New(core), map[string]string{"service": "artbot"}).Info("ready")
	withService(zap.New(core), nil).Info("bare")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "artbot", logs.All()[0].ContextMap()["service"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "service")
}
