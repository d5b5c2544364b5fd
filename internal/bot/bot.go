package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/classifier"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/metrics"
	"github.com/feral-file/ff-artbot/internal/render"
	"github.com/feral-file/ff-artbot/internal/resolver"
	"github.com/feral-file/ff-artbot/internal/selector"
	"github.com/feral-file/ff-artbot/internal/wallet"
)

// DefaultCommandTimeout bounds the external calls of one command
const DefaultCommandTimeout = 30 * time.Second

const detailsSuffix = "?details"

// Directory exposes the published snapshot and the key normalizer it was built with
//
//go:generate mockgen -source=bot.go -destination=../mocks/bot.go -package=mocks -mock_names=Directory=MockDirectory,Verticals=MockVerticals,OpenProjectSource=MockOpenProjectSource,TokenResolver=MockTokenResolver,WalletSelector=MockWalletSelector,TokenRenderer=MockTokenRenderer,TriviaTally=MockTriviaTally
type Directory interface {
	Snapshot() *directory.Snapshot
	Normalizer() *keys.Normalizer
}

// Verticals recognizes vertical names and maps them to collection keys
type Verticals interface {
	IsVerticalName(key string) bool
	VerticalName(key string) string
}

// OpenProjectSource lists the projects currently minting
type OpenProjectSource interface {
	GetOpenProjects(ctx context.Context) ([]domain.OpenProject, error)
}

// TokenResolver turns a piece command into a token of a project
type TokenResolver interface {
	Resolve(ctx context.Context, project *domain.Project, content string) (*resolver.Resolution, error)
}

// WalletSelector picks a token held by a wallet
type WalletSelector interface {
	SelectToken(ctx context.Context, snapshot *directory.Snapshot, normalizer *keys.Normalizer, wallet string, intentKey string, intent domain.Intent) (*wallet.Selection, error)
}

// TokenRenderer builds the embed of a resolved token
type TokenRenderer interface {
	TokenEmbed(ctx context.Context, res *resolver.Resolution) (*messaging.Embed, error)
}

// TriviaTally credits a user who looked up the answer of the open question
type TriviaTally interface {
	Tally(ctx context.Context, msg messaging.InboundMessage, project *domain.Project) error
}

// Config holds the command handling settings
type Config struct {
	CommandTimeout time.Duration
}

// Bot answers chat commands
type Bot struct {
	config    Config
	directory Directory
	verticals Verticals
	open      OpenProjectSource
	resolver  TokenResolver
	wallets   WalletSelector
	renderer  TokenRenderer
	trivia    TriviaTally
	sender    messaging.Sender
	random    adapter.Random
	clock     adapter.Clock
	metrics   *metrics.Metrics
}

// Deps groups the collaborators of a Bot
type Deps struct {
	Directory Directory
	Verticals Verticals
	Open      OpenProjectSource
	Resolver  TokenResolver
	Wallets   WalletSelector
	Renderer  TokenRenderer
	// Trivia is optional
	Trivia  TriviaTally
	Sender  messaging.Sender
	Random  adapter.Random
	Clock   adapter.Clock
	Metrics *metrics.Metrics
}

// New creates a bot
func New(config Config, deps Deps) *Bot {
	if config.CommandTimeout <= 0 {
		config.CommandTimeout = DefaultCommandTimeout
	}
	return &Bot{
		config:    config,
		directory: deps.Directory,
		verticals: deps.Verticals,
		open:      deps.Open,
		resolver:  deps.Resolver,
		wallets:   deps.Wallets,
		renderer:  deps.Renderer,
		trivia:    deps.Trivia,
		sender:    deps.Sender,
		random:    deps.Random,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
	}
}

// command is a parsed "#..." message
type command struct {
	// afterTheHash is the text after the first space, or the whole content without one
	afterTheHash string
	key          string
	intent       domain.Intent
}

// Parse classifies content against snapshot. Content that does not start
// with "#" is UNKNOWN.
func Parse(snapshot *directory.Snapshot, normalizer *keys.Normalizer, verticals classifier.Verticals, content string) (domain.Intent, string) {
	cmd := parse(snapshot, normalizer, verticals, content)
	return cmd.intent, cmd.key
}

func parse(snapshot *directory.Snapshot, normalizer *keys.Normalizer, verticals classifier.Verticals, content string) command {
	afterTheHash := content
	if i := strings.Index(content, " "); i >= 0 {
		afterTheHash = content[i+1:]
	}
	afterTheHash = strings.Replace(afterTheHash, detailsSuffix, "", 1)

	key := normalizer.Normalize(afterTheHash)
	return command{
		afterTheHash: afterTheHash,
		key:          key,
		intent:       classifier.Classify(snapshot, verticals, key, afterTheHash),
	}
}

// HandleMessage answers one chat message. Messages that are not commands
// are ignored. The returned error is reserved for failures worth a
// redelivery, such as an unpublished directory or a failed send.
func (b *Bot) HandleMessage(ctx context.Context, msg messaging.InboundMessage) (err error) {
	content := strings.TrimSpace(msg.Content)
	if !strings.HasPrefix(content, "#") {
		return nil
	}

	ctx = logger.WithCommand(ctx, logger.CommandInfo{
		ID:        uuid.NewString(),
		ChannelID: msg.ChannelID,
		AuthorID:  msg.AuthorID,
		Content:   content,
	})
	ctx, cancel := context.WithTimeout(ctx, b.config.CommandTimeout)
	defer cancel()

	done := b.metrics.CommandStarted()
	defer done()

	start := b.clock.Now()
	intent := domain.IntentUnknown
	defer func() {
		outcome := "ok"
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("panic handling command: %v", r), zap.Stack("stack"))
			outcome = "panic"
			err = b.reply(ctx, msg, MsgUnexpected)
		} else if err != nil {
			outcome = "error"
		}
		b.metrics.ObserveCommand(intent.String(), outcome, b.clock.Since(start))
	}()

	if len(content) <= 1 {
		return b.reply(ctx, msg, MsgInvalidFormat)
	}

	snapshot := b.directory.Snapshot()
	if snapshot == nil {
		return domain.ErrDirectoryNotReady
	}
	normalizer := b.directory.Normalizer()

	cmd := parse(snapshot, normalizer, b.verticals, content)
	intent = cmd.intent

	logger.DebugCtx(ctx, "Command classified", zap.String("intent", intent.String()), zap.String("key", cmd.key))

	switch cmd.intent {
	case domain.IntentRandom:
		return b.sendProject(ctx, msg, selector.PickProject(snapshot.Projects(), b.random), content)
	case domain.IntentOpen:
		return b.sendProject(ctx, msg, b.pickOpenProject(ctx, snapshot, normalizer), content)
	case domain.IntentCollection:
		collection := b.verticals.VerticalName(cmd.key)
		return b.sendProject(ctx, msg, selector.PickProject(snapshot.ByCollection(collection), b.random), content)
	case domain.IntentTag:
		return b.sendProject(ctx, msg, selector.PickProject(snapshot.ByTag(cmd.key), b.random), content)
	case domain.IntentArtist:
		return b.sendProject(ctx, msg, selector.PickProject(snapshot.ByArtist(cmd.key), b.random), content)
	case domain.IntentWallet:
		return b.sendWalletToken(ctx, msg, snapshot, normalizer, cmd)
	case domain.IntentProject:
		project, _ := snapshot.Project(cmd.key)
		return b.sendProject(ctx, msg, project, content)
	case domain.IntentUnknown:
		logger.InfoCtx(ctx, "Wasn't able to parse message")
		return nil
	default:
		return fmt.Errorf("%w: unhandled intent %s", domain.ErrUnknownCommand, cmd.intent)
	}
}

// pickOpenProject re-queries the open projects on every draw
func (b *Bot) pickOpenProject(ctx context.Context, snapshot *directory.Snapshot, normalizer *keys.Normalizer) *domain.Project {
	var failed bool
	return selector.PickFrom(func(int) *domain.Project {
		if failed {
			return nil
		}

		open, err := b.open.GetOpenProjects(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to get open projects: %w", err))
			failed = true
			return nil
		}
		if len(open) == 0 {
			failed = true
			return nil
		}

		pick := open[b.random.IntN(len(open))]
		project, _ := snapshot.Project(normalizer.Normalize(pick.Name))
		return project
	})
}

// sendWalletToken answers "#? <wallet> [scope]" with a random token of the wallet
func (b *Bot) sendWalletToken(ctx context.Context, msg messaging.InboundMessage, snapshot *directory.Snapshot, normalizer *keys.Normalizer, cmd command) error {
	walletRef := strings.Fields(cmd.afterTheHash)[0]
	rest := strings.Replace(cmd.afterTheHash, walletRef, "", 1)

	scope := normalizer.Normalize(rest)
	if scope == "" {
		scope = domain.RandomKey
	}

	scopeIntent := classifier.Classify(snapshot, b.verticals, scope, rest)
	if scopeIntent == domain.IntentUnknown {
		return b.reply(ctx, msg, MsgNotUnderstood(rest))
	}
	if scopeIntent == domain.IntentCollection {
		scope = b.verticals.VerticalName(scope)
	}

	walletRef = strings.TrimPrefix(walletRef, "#")
	selection, err := b.wallets.SelectToken(ctx, snapshot, normalizer, walletRef, scope, scopeIntent)
	if err != nil {
		return b.replyWalletError(ctx, msg, strings.ToLower(walletRef), scope, err)
	}

	return b.sendProject(ctx, msg, selection.Project, fmt.Sprintf("#%d", selection.Token.Invocation))
}

// sendProject resolves content against project and sends the result.
// A nil project means the random draw came up empty and nothing is sent.
func (b *Bot) sendProject(ctx context.Context, msg messaging.InboundMessage, project *domain.Project, content string) error {
	if project == nil {
		logger.InfoCtx(ctx, "No project selected")
		return nil
	}

	if b.trivia != nil {
		if err := b.trivia.Tally(ctx, msg, project); err != nil {
			logger.WarnCtx(ctx, "Failed to tally trivia answer", zap.Error(err))
		}
	}

	res, err := b.resolver.Resolve(ctx, project, content)
	if err != nil {
		return b.replyResolveError(ctx, msg, project, err)
	}

	if res.Listing != nil {
		return b.send(ctx, msg, messaging.OutboundMessage{
			Embeds: []messaging.Embed{*render.ListingEmbed(project, *res.Listing)},
		})
	}

	embed, err := b.renderer.TokenEmbed(ctx, res)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			return b.reply(ctx, msg, MsgRateLimited)
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to render token: %w", err),
			zap.String("project", project.Name),
			zap.Int64("token_id", res.TokenID))
		return nil
	}

	return b.send(ctx, msg, messaging.OutboundMessage{Embeds: []messaging.Embed{*embed}})
}
