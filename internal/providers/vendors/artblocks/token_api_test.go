package artblocks_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/mocks"
	"github.com/feral-file/ff-artbot/internal/providers/vendors/artblocks"
)

const tokenAPIURL = "https://token.artblocks.io/"

func TestTokenAPI_GetTokenMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	api := artblocks.NewTokenAPI(mockHTTPClient, tokenAPIURL, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), "https://token.artblocks.io/0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270/78000007", map[string]string{"Accept": "application/json"}).
		Return([]byte(`{
			"name": "Fidenza #7",
			"artist": "Tyler Hobbs",
			"collection_name": "Fidenza by Tyler Hobbs",
			"platform": "Art Blocks Curated",
			"external_url": "https://www.artblocks.io/token/0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270-78000007",
			"generator_url": "https://generator.artblocks.io/0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270/78000007",
			"preview_asset_url": "https://media.artblocks.io/78000007.png",
			"features": {"Scale": "Large", "Turbulence": "Low"}
		}`), nil)

	metadata, err := api.GetTokenMetadata(context.Background(), "0xA7D8D9EF8D8CE8992DF33D8B8CF4AEBABD5BD270", "78000007")

	require.NoError(t, err)
	assert.Equal(t, "Fidenza #7", metadata.Name)
	assert.Equal(t, "Art Blocks Curated", metadata.Platform)
	assert.Equal(t, "Large", metadata.Features["Scale"])
}

func TestTokenAPI_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	api := artblocks.NewTokenAPI(mockHTTPClient, tokenAPIURL, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("request failed after retries: %w", domain.ErrRateLimited))

	_, err := api.GetTokenMetadata(context.Background(), "0xabc", "1")

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Contains(t, err.Error(), "failed to call ArtBlocks token API")
}

func TestTokenAPI_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	api := artblocks.NewTokenAPI(mockHTTPClient, tokenAPIURL, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("<html>"), nil)

	_, err := api.GetTokenMetadata(context.Background(), "0xabc", "1")

	assert.Error(t, err)
}

func TestTokenURL(t *testing.T) {
	assert.Equal(t, "https://token.artblocks.io/0xabc/42", artblocks.TokenURL("https://token.artblocks.io/", "0xABC", "42"))
}
