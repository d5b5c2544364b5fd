package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-artbot/internal/api/middleware"
	"github.com/feral-file/ff-artbot/internal/api/rest"
	"github.com/feral-file/ff-artbot/internal/api/server"
	"github.com/feral-file/ff-artbot/internal/bot"
	"github.com/feral-file/ff-artbot/internal/config"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/sweeper"
)

var (
	configFile string
	envPath    string
)

func main() {
	root := &cobra.Command{
		Use:           "artbot",
		Short:         "Art Blocks chat bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")

	root.AddCommand(serveCommand(), resolveCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and initializes the logger
func loadConfig() (*config.ArtBotConfig, error) {
	config.ChdirRepoRoot()
	cfg, err := config.LoadArtBotConfig(configFile, envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "artbot",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer chat commands and run the scheduled routines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.ArtBotConfig) error {
	logger.InfoCtx(ctx, "Starting artbot")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := newApp(ctx, cfg, appOptions{registerer: reg, transport: true})
	if err != nil {
		return err
	}
	defer a.close()

	// Commands are not consumed until the first snapshot exists
	if _, err := a.directory.WaitReady(ctx, time.Second, time.Minute); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	dispatcher := bot.NewDispatcher(gctx, a.bot.HandleMessage, cfg.Bot.PoolSize, cfg.Bot.QueueSize,
		bot.WithReadiness(a.directory.Ready))
	defer dispatcher.Stop()

	if err := a.transport.Subscribe(gctx, dispatcher.Handle); err != nil {
		return fmt.Errorf("failed to subscribe to chat commands: %w", err)
	}

	routines := []sweeper.Sweeper{a.refresh, a.birthday}
	if a.trivia != nil {
		routines = append(routines, a.trivia)
	}
	for _, routine := range routines {
		g.Go(func() error {
			err := routine.Start(gctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s stopped: %w", routine.Name(), err)
			}
			return nil
		})
	}

	var ops *server.Server
	if cfg.Server.Enabled {
		ops, err = server.New(server.Config{
			Debug:        cfg.Debug,
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			Auth: middleware.AuthConfig{
				JWTPublicKey: cfg.Server.JWTPublicKey,
				APIKeys:      cfg.Server.APIKeys,
			},
			CORSOrigins: cfg.Server.CORSOrigins,
		}, rest.NewHandler(a.directory, a.registry), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		if err != nil {
			return fmt.Errorf("failed to set up ops server: %w", err)
		}
		g.Go(ops.Start)
	}

	<-gctx.Done()
	logger.InfoCtx(ctx, "Shutting down artbot", zap.Error(context.Cause(gctx)))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if ops != nil {
		if err := ops.Shutdown(shutdownCtx); err != nil {
			logger.ErrorCtx(ctx, err)
		}
	}
	for _, routine := range routines {
		if err := routine.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to stop %s: %w", routine.Name(), err))
		}
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.InfoCtx(ctx, "Artbot stopped")
	return nil
}

func resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <command>",
		Short: "Classify and answer one command, printing the reply instead of sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			ctx := cmd.Context()
			out := &printSender{w: cmd.OutOrStdout()}
			a, err := newApp(ctx, cfg, appOptions{sender: out})
			if err != nil {
				return err
			}
			defer a.close()

			snapshot, err := a.directory.Refresh(ctx)
			if err != nil {
				return err
			}

			intent, key := bot.Parse(snapshot, a.directory.Normalizer(), a.registry, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "intent: %s\nkey: %s\n", intent, key)

			return a.bot.HandleMessage(ctx, messaging.InboundMessage{
				ID:        "cli",
				ChannelID: "cli",
				AuthorID:  "cli",
				Content:   args[0],
				SentAt:    time.Now(),
			})
		},
	}
}
