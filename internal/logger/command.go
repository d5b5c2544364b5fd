package logger

import (
	"context"

	"go.uber.org/zap"
)

type commandKey struct{}

// CommandInfo identifies one inbound chat command for log correlation
type CommandInfo struct {
	ID        string
	ChannelID string
	AuthorID  string
	Content   string
}

// WithCommand returns a context whose loggers carry the command fields
func WithCommand(ctx context.Context, info CommandInfo) context.Context {
	return context.WithValue(ctx, commandKey{}, info)
}

// CommandFromContext returns the command attached to ctx, if any
func CommandFromContext(ctx context.Context) (CommandInfo, bool) {
	if ctx == nil {
		return CommandInfo{}, false
	}
	info, ok := ctx.Value(commandKey{}).(CommandInfo)
	return info, ok
}

func commandFields(ctx context.Context) []zap.Field {
	info, ok := CommandFromContext(ctx)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("command_id", info.ID),
		zap.String("channel_id", info.ChannelID),
		zap.String("author_id", info.AuthorID),
		zap.String("content", info.Content),
	}
}
