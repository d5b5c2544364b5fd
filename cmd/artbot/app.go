package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/bot"
	"github.com/feral-file/ff-artbot/internal/config"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/metrics"
	"github.com/feral-file/ff-artbot/internal/namedmap"
	"github.com/feral-file/ff-artbot/internal/providers/ethereum"
	"github.com/feral-file/ff-artbot/internal/providers/jetstream"
	"github.com/feral-file/ff-artbot/internal/providers/vendors/artblocks"
	"github.com/feral-file/ff-artbot/internal/ratelimit"
	"github.com/feral-file/ff-artbot/internal/registry"
	"github.com/feral-file/ff-artbot/internal/render"
	"github.com/feral-file/ff-artbot/internal/resolver"
	"github.com/feral-file/ff-artbot/internal/store"
	"github.com/feral-file/ff-artbot/internal/sweeper"
	"github.com/feral-file/ff-artbot/internal/trivia"
	"github.com/feral-file/ff-artbot/internal/wallet"
)

type appOptions struct {
	// registerer receives the bot metrics; nil disables metrics
	registerer prometheus.Registerer
	// transport connects to NATS and builds the scheduled routines
	transport bool
	// sender replaces the transport as the outbound sender
	sender messaging.Sender
}

// app holds the wired components of the bot
type app struct {
	registry  registry.Registry
	directory *directory.Directory
	bot       *bot.Bot
	transport *jetstream.Transport

	refresh  *sweeper.Routine
	birthday *sweeper.Routine
	trivia   *sweeper.Routine

	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.ArtBotConfig, opts appOptions) (*app, error) {
	a := &app{}
	ok := false
	defer func() {
		if !ok {
			a.close()
		}
	}()

	var m *metrics.Metrics
	if opts.registerer != nil {
		m = metrics.MustNewMetrics(opts.registerer)
	}

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}
	a.registry = reg

	clock := adapter.NewClock()
	random := adapter.NewRandom()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.HTTPTimeout, adapter.DefaultRetryPolicy)

	artBlocks := artblocks.NewClient(httpClient, cfg.Vendors.ArtBlocksURL, jsonAdapter)
	proxy, err := ratelimit.NewProxy(ratelimit.Config{
		Providers: map[string]ratelimit.ProviderConfig{
			artblocks.TokenAPIProvider: {
				RequestsPerSecond: cfg.RateLimit.TokenAPIRPS,
				Burst:             cfg.RateLimit.TokenAPIBurst,
				MaxQueueTime:      cfg.RateLimit.MaxQueueTime,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	tokenAPI := artblocks.WithRateLimit(
		artblocks.NewTokenAPI(httpClient, cfg.Vendors.ArtBlocksTokenAPIURL, jsonAdapter),
		proxy,
	)

	if cfg.Ethereum.RPCURL == "" {
		return nil, errors.New("ethereum.rpc_url is required")
	}
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial Ethereum RPC: %w", err)
	}
	a.closers = append(a.closers, ethClient.Close)
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query Ethereum chain id: %w", err)
	}
	if chainID.Cmp(big.NewInt(1)) != 0 {
		logger.WarnCtx(ctx, "Ethereum RPC is not mainnet, ENS and Art Blocks contracts may be missing",
			zap.String("chain_id", chainID.String()))
	}
	chain := ethereum.NewClient(ethClient, cfg.Ethereum.ENSRegistry)

	normalizer := keys.NewNormalizer(reg.Aliases())
	mappings := namedmap.NewProvider(reg, random)
	a.directory = directory.New(artBlocks, normalizer, mappings.For, clock)

	sender := opts.sender
	if opts.transport {
		a.transport, err = jetstream.NewTransport(ctx, jetstream.Config{
			URL:                   cfg.NATS.URL,
			StreamName:            cfg.NATS.StreamName,
			ConsumerName:          cfg.NATS.ConsumerName,
			CommandSubject:        cfg.NATS.CommandSubject,
			OutboundSubjectPrefix: cfg.NATS.OutboundSubjectPrefix,
			TriviaSubject:         cfg.NATS.TriviaSubject,
			MaxReconnects:         cfg.NATS.MaxReconnects,
			ReconnectWait:         cfg.NATS.ReconnectWait,
			ConnectionName:        cfg.NATS.ConnectionName,
			AckWait:               cfg.NATS.AckWait,
			MaxDeliver:            cfg.NATS.MaxDeliver,
		}, adapter.NewNatsJetStream(), jsonAdapter, adapter.NewJCS())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, a.transport.Close)
		if sender == nil {
			sender = a.transport
		}
	}
	if sender == nil {
		return nil, errors.New("no outbound sender configured")
	}

	renderer := render.New(
		render.Config{SiteURL: cfg.Vendors.ArtBlocksSiteURL},
		tokenAPI,
		artBlocks,
		chain,
		chain,
		render.NewPreviewResolver(httpClient),
	)

	deps := bot.Deps{
		Directory: a.directory,
		Verticals: reg,
		Open:      artBlocks,
		Resolver:  resolver.New(artBlocks, artBlocks, random),
		Wallets: wallet.NewSelector(wallet.Config{
			CacheSize: cfg.Wallet.CacheSize,
			CacheTTL:  cfg.Wallet.CacheTTL,
		}, artBlocks, chain, random),
		Renderer: renderer,
		Sender:   sender,
		Random:   random,
		Clock:    clock,
		Metrics:  m,
	}

	if opts.transport {
		ledger, err := openLedger(ctx, cfg, a)
		if err != nil {
			return nil, err
		}

		a.refresh = sweeper.NewCatalogRefreshSweeper(a.directory, clock, m, cfg.RefreshInterval())
		a.birthday = sweeper.NewBirthdaySweeper(sweeper.BirthdayConfig{
			BaseHour:         cfg.Birthday.BaseHour,
			ReannounceYearly: cfg.Birthday.ReannounceYearly,
		}, a.directory, renderer, reg, sender, ledger, clock, m)

		if cfg.Trivia.Enabled {
			game := trivia.NewGame(a.transport, clock, cfg.Trivia.Timeout)
			deps.Trivia = game
			a.trivia = sweeper.NewTriviaSweeper(a.directory, game, random, clock, m)
		}
	}

	a.bot = bot.New(bot.Config{CommandTimeout: cfg.Bot.CommandTimeout}, deps)

	ok = true
	return a, nil
}

// openLedger returns the Postgres birthday ledger when a database is configured,
// the in-memory one otherwise
func openLedger(ctx context.Context, cfg *config.ArtBotConfig, a *app) (store.Store, error) {
	if !cfg.Database.Enabled() {
		logger.WarnCtx(ctx, "No database configured, birthday announcements are remembered in memory only")
		return store.NewMemoryStore(), nil
	}

	db, err := store.Open(ctx, store.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		Debug:           cfg.Debug,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err == nil {
		a.closers = append(a.closers, func() {
			if err := sqlDB.Close(); err != nil {
				logger.Error(err, zap.String("message", "Failed to close database"))
			}
		})
	}

	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	return store.NewPGStore(db), nil
}

// printSender writes replies to a terminal instead of a chat channel
type printSender struct {
	w io.Writer
}

func (p *printSender) Send(_ context.Context, msg messaging.OutboundMessage) error {
	var b strings.Builder
	if msg.Content != "" {
		fmt.Fprintf(&b, "%s\n", msg.Content)
	}
	for _, embed := range msg.Embeds {
		if embed.Title != "" {
			fmt.Fprintf(&b, "title: %s\n", embed.Title)
		}
		if embed.URL != "" {
			fmt.Fprintf(&b, "url: %s\n", embed.URL)
		}
		if embed.Description != "" {
			fmt.Fprintf(&b, "description: %s\n", embed.Description)
		}
		if embed.ImageURL != "" {
			fmt.Fprintf(&b, "image: %s\n", embed.ImageURL)
		}
		for _, field := range embed.Fields {
			fmt.Fprintf(&b, "%s: %s\n", field.Name, field.Value)
		}
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}
