package artblocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
)

// TokenAPI fetches token display metadata from the ArtBlocks token API
//
//go:generate mockgen -source=token_api.go -destination=../../../mocks/artblocks_token_api.go -package=mocks -mock_names=TokenAPI=MockTokenAPI
type TokenAPI interface {
	// GetTokenMetadata returns the metadata of a token of a contract
	GetTokenMetadata(ctx context.Context, contractAddress string, tokenID string) (*domain.TokenMetadata, error)
}

type tokenAPI struct {
	httpClient adapter.HTTPClient
	baseURL    string
	json       adapter.JSON
}

// NewTokenAPI creates a token API client rooted at baseURL, e.g. https://token.artblocks.io
func NewTokenAPI(httpClient adapter.HTTPClient, baseURL string, json adapter.JSON) TokenAPI {
	return &tokenAPI{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		json:       json,
	}
}

// GetTokenMetadata errors wrap domain.ErrRateLimited when the API throttles
func (t *tokenAPI) GetTokenMetadata(ctx context.Context, contractAddress string, tokenID string) (*domain.TokenMetadata, error) {
	url := TokenURL(t.baseURL, contractAddress, tokenID)

	body, err := t.httpClient.GetBytes(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to call ArtBlocks token API: %w", err)
	}

	var metadata domain.TokenMetadata
	if err := t.json.Unmarshal(body, &metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token metadata: %w", err)
	}

	return &metadata, nil
}

// TokenURL returns the token API URL of a token
func TokenURL(baseURL, contractAddress, tokenID string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(baseURL, "/"), strings.ToLower(contractAddress), tokenID)
}
