package artblocks

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/domain"
)

const (
	// pageSize is the Hasura row limit per request
	pageSize = 1000
)

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

// GraphQLError is a single error entry of a GraphQL response
type GraphQLError struct {
	Message string `json:"message"`
}

// ProjectRow is a projects_metadata row
type ProjectRow struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"project_id"`
	ContractAddress string  `json:"contract_address"`
	Invocations     string  `json:"invocations"`
	MaxInvocations  string  `json:"max_invocations"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Active          bool    `json:"active"`
	ArtistName      *string `json:"artist_name"`
	VerticalName    string  `json:"vertical_name"`
	Vertical        *struct {
		CategoryName *string `json:"category_name"`
	} `json:"vertical"`
	Tags []struct {
		TagName string `json:"tag_name"`
	} `json:"tags"`
	StartDatetime *string `json:"start_datetime"`
}

// TokenRow is a tokens_metadata row
type TokenRow struct {
	ID              string   `json:"id"`
	TokenID         string   `json:"token_id"`
	Invocation      string   `json:"invocation"`
	ContractAddress string   `json:"contract_address"`
	OwnerAddress    string   `json:"owner_address"`
	ListEthPrice    *float64 `json:"list_eth_price"`
	Project         *struct {
		Name *string `json:"name"`
	} `json:"project"`
}

// GraphQLResponse represents a GraphQL response of any of the client's queries
type GraphQLResponse struct {
	Data struct {
		Projects []ProjectRow `json:"projects_metadata"`
		Project  *ProjectRow  `json:"projects_metadata_by_pk"`
		Tokens   []TokenRow   `json:"tokens_metadata"`
		Token    *TokenRow    `json:"tokens_metadata_by_pk"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// Client defines the interface for ArtBlocks client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/artblocks_client.go -package=mocks -mock_names=Client=MockArtBlocksClient
type Client interface {
	// GetAllProjects returns every project of the catalog
	GetAllProjects(ctx context.Context) ([]domain.CatalogEntry, error)

	// GetOpenProjects returns the projects currently minting
	GetOpenProjects(ctx context.Context) ([]domain.OpenProject, error)

	// GetProjectInvocations returns the live minted count of a project
	GetProjectInvocations(ctx context.Context, projectID string) (*int64, error)

	// GetProjectFloor returns the lowest listed token of a project
	GetProjectFloor(ctx context.Context, projectID string) (*domain.FloorToken, error)

	// GetTokenOwnerAddress returns the current owner of a token
	GetTokenOwnerAddress(ctx context.Context, contractAddress string, tokenID string) (string, error)

	// GetAllTokensInWallet returns every token held by an address
	GetAllTokensInWallet(ctx context.Context, address string) ([]domain.WalletToken, error)
}

// ArtBlocksClient implements ArtBlocks client
type ArtBlocksClient struct {
	httpClient adapter.HTTPClient
	graphqlURL string
	json       adapter.JSON
}

// NewClient creates a new ArtBlocks client
func NewClient(httpClient adapter.HTTPClient, graphqlURL string, json adapter.JSON) Client {
	return &ArtBlocksClient{
		httpClient: httpClient,
		graphqlURL: graphqlURL,
		json:       json,
	}
}

// GetAllProjects pages through projects_metadata
func (c *ArtBlocksClient) GetAllProjects(ctx context.Context) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry

	for offset := 0; ; offset += pageSize {
		response, err := c.query(ctx, allProjectsQuery, map[string]any{
			"limit":  pageSize,
			"offset": offset,
		})
		if err != nil {
			return nil, err
		}

		for _, row := range response.Data.Projects {
			entries = append(entries, row.toCatalogEntry())
		}

		if len(response.Data.Projects) < pageSize {
			return entries, nil
		}
	}
}

// GetOpenProjects returns active, unpaused and incomplete projects
func (c *ArtBlocksClient) GetOpenProjects(ctx context.Context) ([]domain.OpenProject, error) {
	response, err := c.query(ctx, openProjectsQuery, map[string]any{})
	if err != nil {
		return nil, err
	}

	projects := make([]domain.OpenProject, 0, len(response.Data.Projects))
	for _, row := range response.Data.Projects {
		name := ""
		if row.Name != nil {
			name = *row.Name
		}
		projects = append(projects, domain.OpenProject{ID: row.ID, Name: name})
	}

	return projects, nil
}

// GetProjectInvocations returns nil when the project is unknown
func (c *ArtBlocksClient) GetProjectInvocations(ctx context.Context, projectID string) (*int64, error) {
	response, err := c.query(ctx, projectInvocationsQuery, map[string]any{"id": projectID})
	if err != nil {
		return nil, err
	}

	if response.Data.Project == nil {
		return nil, nil
	}

	invocations, err := strconv.ParseInt(response.Data.Project.Invocations, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid invocations %q: %w", response.Data.Project.Invocations, err)
	}

	return &invocations, nil
}

// GetProjectFloor returns nil when no token of the project is listed
func (c *ArtBlocksClient) GetProjectFloor(ctx context.Context, projectID string) (*domain.FloorToken, error) {
	response, err := c.query(ctx, projectFloorQuery, map[string]any{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	if len(response.Data.Tokens) == 0 {
		return nil, nil
	}

	row := response.Data.Tokens[0]
	invocation, err := row.invocation()
	if err != nil {
		return nil, err
	}

	return &domain.FloorToken{
		Invocation:   invocation,
		ListEthPrice: row.ListEthPrice,
	}, nil
}

// GetTokenOwnerAddress returns an empty string when the token is unknown
func (c *ArtBlocksClient) GetTokenOwnerAddress(ctx context.Context, contractAddress string, tokenID string) (string, error) {
	id := fmt.Sprintf("%s-%s", strings.ToLower(contractAddress), tokenID)

	response, err := c.query(ctx, tokenOwnerQuery, map[string]any{"id": id})
	if err != nil {
		return "", err
	}

	if response.Data.Token == nil {
		return "", nil
	}

	return response.Data.Token.OwnerAddress, nil
}

// GetAllTokensInWallet pages through tokens_metadata for an owner
func (c *ArtBlocksClient) GetAllTokensInWallet(ctx context.Context, address string) ([]domain.WalletToken, error) {
	var tokens []domain.WalletToken

	for offset := 0; ; offset += pageSize {
		response, err := c.query(ctx, walletTokensQuery, map[string]any{
			"wallet": strings.ToLower(address),
			"limit":  pageSize,
			"offset": offset,
		})
		if err != nil {
			return nil, err
		}

		for _, row := range response.Data.Tokens {
			token, err := row.toWalletToken()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		}

		if len(response.Data.Tokens) < pageSize {
			return tokens, nil
		}
	}
}

func (c *ArtBlocksClient) query(ctx context.Context, query graphQLQuery, variables map[string]any) (*GraphQLResponse, error) {
	request := GraphQLRequest{
		OperationName: query.OperationName,
		Query:         query.Document,
		Variables:     variables,
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	respBody, err := c.httpClient.PostBytes(ctx, c.graphqlURL, headers, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to call ArtBlocks GraphQL API: %w", err)
	}

	var response GraphQLResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GraphQL response: %w", err)
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL errors in %s: %s", query.OperationName, response.Errors[0].Message)
	}

	return &response, nil
}

func (r ProjectRow) toCatalogEntry() domain.CatalogEntry {
	entry := domain.CatalogEntry{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		ContractAddress: r.ContractAddress,
		Invocations:     r.Invocations,
		MaxInvocations:  r.MaxInvocations,
		Name:            r.Name,
		Description:     r.Description,
		Active:          r.Active,
		ArtistName:      r.ArtistName,
		VerticalName:    r.VerticalName,
		StartDatetime:   r.StartDatetime,
	}
	if r.Vertical != nil {
		entry.CategoryName = r.Vertical.CategoryName
	}
	for _, tag := range r.Tags {
		entry.Tags = append(entry.Tags, tag.TagName)
	}
	return entry
}

// invocation reads the invocation column, deriving it from the token id
// when the row leaves it empty
func (r TokenRow) invocation() (int64, error) {
	if r.Invocation == "" {
		_, invocation, err := ParseTokenID(r.TokenID)
		if err != nil {
			return 0, fmt.Errorf("token %s has no invocation: %w", r.ID, err)
		}
		return invocation, nil
	}

	invocation, err := strconv.ParseInt(r.Invocation, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid invocation %q of token %s: %w", r.Invocation, r.ID, err)
	}
	return invocation, nil
}

func (r TokenRow) toWalletToken() (domain.WalletToken, error) {
	invocation, err := r.invocation()
	if err != nil {
		return domain.WalletToken{}, err
	}

	token := domain.WalletToken{
		TokenID:         r.TokenID,
		Invocation:      invocation,
		ContractAddress: r.ContractAddress,
	}
	if r.Project != nil && r.Project.Name != nil {
		token.ProjectName = *r.Project.Name
	}
	return token, nil
}

// ParseTokenID parses an ArtBlocks token ID into project number and invocation.
// ArtBlocks token IDs are in the format: projectNumber * 1000000 + invocation
func ParseTokenID(tokenID string) (projectNumber int64, invocation int64, err error) {
	// Parse token ID as big int to handle large numbers
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return 0, 0, fmt.Errorf("invalid token ID: %s", tokenID)
	}

	multiplier := big.NewInt(domain.TokenIDMultiplier)
	projectNumber = new(big.Int).Div(id, multiplier).Int64()
	invocation = new(big.Int).Mod(id, multiplier).Int64()

	return projectNumber, invocation, nil
}
