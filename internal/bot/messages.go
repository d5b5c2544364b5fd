package bot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/resolver"
)

// User facing replies
const (
	MsgInvalidFormat = "Invalid format, enter # followed by the piece number of interest."
	MsgRateLimited   = "Sorry! Our API is temporarily rate limited, please try again in a little bit"
	MsgUnexpected    = "Sorry, something unexpected went wrong"
)

// MsgOutOfRange is the reply to a piece number past the minted count
func MsgOutOfRange(minted int64, projectName string) string {
	return fmt.Sprintf("Invalid #, only %d pieces minted for %s.", minted, projectName)
}

// MsgNoFloor is the reply when nothing of a project is listed
func MsgNoFloor(projectName string) string {
	return fmt.Sprintf("Sorry, looks like no %s tokens are for sale!", projectName)
}

// MsgNotUnderstood is the reply to a wallet command with an unrecognized scope
func MsgNotUnderstood(rest string) string {
	return fmt.Sprintf("Sorry, I wasn't able to understand that: %s", rest)
}

// MsgENSUnresolved is the reply when an ENS name has no address
func MsgENSUnresolved(name string) string {
	return fmt.Sprintf("Sorry, I wasn't able to resolve ENS name %s", name)
}

// MsgEmptyWallet is the reply when a wallet holds no catalog tokens
func MsgEmptyWallet(wallet string) string {
	return fmt.Sprintf("Sorry, I wasn't able to find any Art Blocks tokens in that wallet: %s", wallet)
}

// MsgNoMatchingTokens is the reply when no wallet token matches the scope
func MsgNoMatchingTokens(scope, wallet string) string {
	return fmt.Sprintf("Sorry! Wasn't able to find any tokens matching %s in that wallet %s", scope, wallet)
}

// reply sends text to the channel of msg
func (b *Bot) reply(ctx context.Context, msg messaging.InboundMessage, text string) error {
	return b.send(ctx, msg, messaging.OutboundMessage{Content: text})
}

func (b *Bot) send(ctx context.Context, msg messaging.InboundMessage, out messaging.OutboundMessage) error {
	out.ChannelID = msg.ChannelID
	out.ReplyTo = msg.ID
	if err := b.sender.Send(ctx, out); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// replyResolveError maps a resolution failure of project to its reply
func (b *Bot) replyResolveError(ctx context.Context, msg messaging.InboundMessage, project *domain.Project, err error) error {
	var outOfRange *resolver.OutOfRangeError
	switch {
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrInvalidNumber):
		return b.reply(ctx, msg, MsgInvalidFormat)
	case errors.As(err, &outOfRange):
		return b.reply(ctx, msg, MsgOutOfRange(outOfRange.Minted, outOfRange.ProjectName))
	case errors.Is(err, domain.ErrNoFloorListing):
		return b.reply(ctx, msg, MsgNoFloor(project.Name))
	case errors.Is(err, domain.ErrRateLimited):
		return b.reply(ctx, msg, MsgRateLimited)
	default:
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve command: %w", err), zap.String("project", project.Name))
		return b.reply(ctx, msg, MsgUnexpected)
	}
}

// replyWalletError maps a wallet selection failure to its reply
func (b *Bot) replyWalletError(ctx context.Context, msg messaging.InboundMessage, wallet, scope string, err error) error {
	switch {
	case errors.Is(err, domain.ErrENSUnresolved):
		logger.WarnCtx(ctx, "ENS name not resolved", zap.String("wallet", wallet), zap.Error(err))
		return b.reply(ctx, msg, MsgENSUnresolved(wallet))
	case errors.Is(err, domain.ErrEmptyWallet):
		return b.reply(ctx, msg, MsgEmptyWallet(wallet))
	case errors.Is(err, domain.ErrNoMatchingTokens):
		return b.reply(ctx, msg, MsgNoMatchingTokens(scope, wallet))
	case errors.Is(err, domain.ErrRateLimited):
		return b.reply(ctx, msg, MsgRateLimited)
	default:
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get wallet tokens: %w", err), zap.String("wallet", wallet))
		return b.reply(ctx, msg, MsgUnexpected)
	}
}
