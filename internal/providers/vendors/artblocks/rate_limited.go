package artblocks

import (
	"context"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/ratelimit"
)

// TokenAPIProvider is the rate limit provider name of the token API
const TokenAPIProvider = "artblocks_token_api"

type rateLimitedTokenAPI struct {
	api   TokenAPI
	proxy ratelimit.Proxy
}

// WithRateLimit throttles token API calls through proxy. Calls that cannot get
// a token in time fail with domain.ErrRateLimited without reaching the API.
func WithRateLimit(api TokenAPI, proxy ratelimit.Proxy) TokenAPI {
	return &rateLimitedTokenAPI{api: api, proxy: proxy}
}

func (r *rateLimitedTokenAPI) GetTokenMetadata(ctx context.Context, contractAddress string, tokenID string) (*domain.TokenMetadata, error) {
	return ratelimit.Request(ctx, r.proxy, TokenAPIProvider, func(ctx context.Context) (*domain.TokenMetadata, error) {
		return r.api.GetTokenMetadata(ctx, contractAddress, tokenID)
	})
}
