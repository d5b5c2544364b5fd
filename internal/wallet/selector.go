package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// TokenSource lists the tokens held by a wallet
//
//go:generate mockgen -source=selector.go -destination=../mocks/wallet.go -package=mocks -mock_names=TokenSource=MockTokenSource,NameResolver=MockNameResolver
type TokenSource interface {
	GetAllTokensInWallet(ctx context.Context, address string) ([]domain.WalletToken, error)
}

// NameResolver resolves ENS names to addresses
type NameResolver interface {
	// ResolveENS returns an empty string when the name has no address
	ResolveENS(ctx context.Context, name string) (string, error)
}

// Config holds the wallet cache settings
type Config struct {
	// CacheSize bounds the number of cached wallets, 0 means unbounded
	CacheSize int
	// CacheTTL is how long holdings are reused, 0 means forever
	CacheTTL time.Duration
}

// Selection is the token picked from a wallet
type Selection struct {
	Address string
	Token   domain.WalletToken
	Project *domain.Project
}

// Selector picks a random token from a wallet, optionally scoped by intent
type Selector struct {
	tokens TokenSource
	names  NameResolver
	random adapter.Random
	cache  *expirable.LRU[string, []domain.WalletToken]
}

// NewSelector creates a wallet selector with its holdings cache
func NewSelector(cfg Config, tokens TokenSource, names NameResolver, random adapter.Random) *Selector {
	return &Selector{
		tokens: tokens,
		names:  names,
		random: random,
		cache:  expirable.NewLRU[string, []domain.WalletToken](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

// SelectToken picks a token held by wallet that matches intentKey under intent.
// Only RANDOM, ARTIST, COLLECTION, TAG and PROJECT scopes can match.
func (s *Selector) SelectToken(
	ctx context.Context,
	snapshot *directory.Snapshot,
	normalizer *keys.Normalizer,
	wallet string,
	intentKey string,
	intent domain.Intent,
) (*Selection, error) {
	address, err := s.resolveAddress(ctx, wallet)
	if err != nil {
		return nil, err
	}

	tokens, cached, err := s.holdings(ctx, address)
	if err != nil {
		return nil, err
	}

	matches := matchTokens(snapshot, normalizer, tokens, intentKey, intent)
	if len(matches) == 0 && cached {
		// Cached holdings may predate a purchase; look again once
		s.Forget(address)
		if tokens, _, err = s.holdings(ctx, address); err != nil {
			return nil, err
		}
		matches = matchTokens(snapshot, normalizer, tokens, intentKey, intent)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyWallet, address)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", domain.ErrNoMatchingTokens, intentKey, address)
	}

	chosen := matches[s.random.IntN(len(matches))]

	logger.DebugCtx(ctx, "Wallet token selected",
		zap.String("address", address),
		zap.String("scope", intentKey),
		zap.String("intent", intent.String()),
		zap.String("token_id", chosen.token.TokenID),
	)

	return &Selection{
		Address: address,
		Token:   chosen.token,
		Project: chosen.project,
	}, nil
}

// Forget drops the cached holdings of an address
func (s *Selector) Forget(address string) {
	s.cache.Remove(strings.ToLower(address))
}

func (s *Selector) resolveAddress(ctx context.Context, wallet string) (string, error) {
	wallet = strings.TrimPrefix(strings.TrimSpace(wallet), "#")

	if domain.IsENSName(wallet) {
		address, err := s.names.ResolveENS(ctx, wallet)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", domain.ErrENSUnresolved, wallet, err)
		}
		if address == "" {
			return "", fmt.Errorf("%w: %s", domain.ErrENSUnresolved, wallet)
		}
		wallet = address
	}

	return strings.ToLower(wallet), nil
}

// holdings returns the tokens of address and whether they came from the cache
func (s *Selector) holdings(ctx context.Context, address string) ([]domain.WalletToken, bool, error) {
	if tokens, ok := s.cache.Get(address); ok {
		return tokens, true, nil
	}

	tokens, err := s.tokens.GetAllTokensInWallet(ctx, address)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get tokens of %s: %w", address, err)
	}

	s.cache.Add(address, tokens)
	return tokens, false, nil
}

type candidate struct {
	token   domain.WalletToken
	project *domain.Project
}

func matchTokens(
	snapshot *directory.Snapshot,
	normalizer *keys.Normalizer,
	tokens []domain.WalletToken,
	intentKey string,
	intent domain.Intent,
) []candidate {
	var matches []candidate
	for _, token := range tokens {
		project, ok := snapshot.Project(normalizer.Normalize(token.ProjectName))
		if !ok {
			continue
		}
		if matchesIntent(project, normalizer, intentKey, intent) {
			matches = append(matches, candidate{token: token, project: project})
		}
	}
	return matches
}

func matchesIntent(project *domain.Project, normalizer *keys.Normalizer, intentKey string, intent domain.Intent) bool {
	switch intent {
	case domain.IntentRandom:
		return true
	case domain.IntentArtist:
		return normalizer.Normalize(project.ArtistName) == intentKey
	case domain.IntentCollection:
		return project.Collection == intentKey
	case domain.IntentTag:
		return project.HasTag(intentKey)
	case domain.IntentProject:
		return normalizer.Normalize(project.Name) == intentKey
	default:
		return false
	}
}
