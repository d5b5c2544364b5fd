package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// DefaultMaxQueueTime bounds how long a request waits for a token
const DefaultMaxQueueTime = 5 * time.Second

// ProviderConfig holds the limits of one upstream API
type ProviderConfig struct {
	RequestsPerSecond float64
	Burst             int
	// MaxQueueTime is how long a request may wait for a token before it is
	// rejected with domain.ErrRateLimited
	MaxQueueTime time.Duration
}

// Config maps provider names to their limits
type Config struct {
	Providers map[string]ProviderConfig
}

// RequestFunc performs the actual API request
type RequestFunc func(ctx context.Context) (any, error)

// Proxy throttles requests to upstream APIs so the bot stays under their quotas
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request runs fn once a token for providerName is available
	Request(ctx context.Context, providerName string, fn RequestFunc) (any, error)
}

type providerLimiter struct {
	name     string
	config   ProviderConfig
	limiter  *rate.Limiter
	rejected atomic.Int64
}

type proxy struct {
	limiters map[string]*providerLimiter
}

// NewProxy creates a rate-limiting proxy. Providers with a non-positive
// rate are rejected.
func NewProxy(cfg Config) (Proxy, error) {
	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, providerConfig := range cfg.Providers {
		if providerConfig.RequestsPerSecond <= 0 {
			return nil, fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if providerConfig.Burst <= 0 {
			providerConfig.Burst = max(int(providerConfig.RequestsPerSecond), 1)
		}
		if providerConfig.MaxQueueTime <= 0 {
			providerConfig.MaxQueueTime = DefaultMaxQueueTime
		}

		limiters[name] = &providerLimiter{
			name:    name,
			config:  providerConfig,
			limiter: rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.Burst),
		}
	}

	logger.Info("Rate limit proxy initialized", zap.Int("providers", len(limiters)))

	return &proxy{limiters: limiters}, nil
}

// Request runs fn through p and returns its typed result. A nil proxy runs fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

// Request blocks until a token is acquired, the context is done or the
// provider's MaxQueueTime passes
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (any, error) {
	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	if err := limiter.acquire(ctx); err != nil {
		return nil, err
	}

	return fn(ctx)
}

func (l *providerLimiter) acquire(ctx context.Context) error {
	queueCtx, cancel := context.WithTimeout(ctx, l.config.MaxQueueTime)
	defer cancel()

	err := l.limiter.Wait(queueCtx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Wait fails fast when the reservation would outlast the queue deadline
	rejected := l.rejected.Add(1)
	logger.WarnCtx(ctx, "Rate limit token unavailable",
		zap.String("provider", l.name),
		zap.Int64("rejected", rejected),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s", domain.ErrRateLimited, l.name)
}
