package render

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
	"github.com/feral-file/ff-artbot/internal/resolver"
)

const (
	// EmbedColor is the accent color of detail and birthday embeds
	EmbedColor = 0x9370DB

	// DefaultSiteURL is the public site linked from owner fields
	DefaultSiteURL = "https://www.artblocks.io"

	// ProposeNamesURL is where users can suggest named tokens and sets
	ProposeNamesURL = "https://github.com/ArtBlocks/artbot/issues/new/choose"
)

// MetadataSource returns the display metadata of a token
//
//go:generate mockgen -source=render.go -destination=../mocks/render.go -package=mocks -mock_names=MetadataSource=MockMetadataSource,OwnerSource=MockOwnerSource,ChainOwnerSource=MockChainOwnerSource,NameLookup=MockNameLookup
type MetadataSource interface {
	GetTokenMetadata(ctx context.Context, contractAddress string, tokenID string) (*domain.TokenMetadata, error)
}

// OwnerSource returns the indexed owner of a token
type OwnerSource interface {
	GetTokenOwnerAddress(ctx context.Context, contractAddress string, tokenID string) (string, error)
}

// ChainOwnerSource reads the owner of a token from the contract itself
type ChainOwnerSource interface {
	ERC721OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error)
}

// NameLookup returns the primary ENS name of an address, empty when there is none
type NameLookup interface {
	LookupENS(ctx context.Context, address string) (string, error)
}

// Config holds the renderer settings
type Config struct {
	SiteURL string
}

// Renderer turns resolutions into chat embeds
type Renderer struct {
	siteURL  string
	metadata MetadataSource
	owners   OwnerSource
	chain    ChainOwnerSource
	names    NameLookup
	previews *PreviewResolver
}

// New creates a renderer. chain may be nil when no Ethereum node is configured.
func New(cfg Config, metadata MetadataSource, owners OwnerSource, chain ChainOwnerSource, names NameLookup, previews *PreviewResolver) *Renderer {
	siteURL := strings.TrimSuffix(cfg.SiteURL, "/")
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return &Renderer{
		siteURL:  siteURL,
		metadata: metadata,
		owners:   owners,
		chain:    chain,
		names:    names,
		previews: previews,
	}
}

// TokenEmbed renders a resolved piece. Details adds features and a thumbnail
// instead of the full size image.
func (r *Renderer) TokenEmbed(ctx context.Context, res *resolver.Resolution) (*messaging.Embed, error) {
	project := res.Project
	tokenID := strconv.FormatInt(res.TokenID, 10)

	metadata, err := r.metadata.GetTokenMetadata(ctx, project.ContractAddress, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token metadata: %w", err)
	}

	embed := &messaging.Embed{
		Title: Title(metadata),
		URL:   metadata.ExternalURL,
	}
	if embed.URL == "" {
		embed.URL = fmt.Sprintf("%s/token/%s-%s", r.siteURL, strings.ToLower(project.ContractAddress), tokenID)
	}

	preview := r.previews.Resolve(ctx, metadata.PreviewAssetURL)
	if res.Details {
		embed.ThumbnailURL = preview
		embed.Color = EmbedColor
	} else {
		embed.ImageURL = preview
	}

	embed.AddField("Owner", r.ownerField(ctx, project.ContractAddress, tokenID), true)

	if res.Details {
		embed.AddField("Features", FeaturesField(metadata.Features), false)
	}

	if metadata.GeneratorURL != "" {
		embed.AddField("Live Script", fmt.Sprintf("[Generator](%s)", metadata.GeneratorURL), true)
	}

	return embed, nil
}

// ListingEmbed renders the named tokens and sets of a project
func ListingEmbed(project *domain.Project, listing domain.NamedListing) *messaging.Embed {
	if listing.Empty() {
		return &messaging.Embed{
			Title: "No named tokens or sets!",
			Description: fmt.Sprintf(
				"I don't have any named tokens or sets for this project yet! [You can propose some here](%s)",
				ProposeNamesURL,
			),
		}
	}

	embed := &messaging.Embed{
		Title: "Named Pieces / Sets",
		Color: EmbedColor,
	}
	if project != nil {
		embed.Description = project.Name
	}
	if len(listing.Singles) > 0 {
		embed.AddField("Named Pieces", entryLines(listing.Singles), false)
	}
	if len(listing.Sets) > 0 {
		embed.AddField("Named Sets", entryLines(listing.Sets), false)
	}
	return embed
}

// BirthdayEmbed renders the release anniversary of a project from the
// metadata of its first piece. It returns nil when the metadata lacks the
// preview, collection or artist.
func (r *Renderer) BirthdayEmbed(ctx context.Context, project *domain.Project) (*messaging.Embed, error) {
	if project.StartTime == nil {
		return nil, nil
	}

	tokenID := strconv.FormatInt(project.TokenID(0), 10)
	metadata, err := r.metadata.GetTokenMetadata(ctx, project.ContractAddress, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token metadata: %w", err)
	}

	if metadata.PreviewAssetURL == "" || metadata.CollectionName == "" || metadata.Artist == "" {
		logger.WarnCtx(ctx, "Incomplete metadata for birthday",
			zap.String("project", project.Name),
			zap.String("tokenID", tokenID))
		return nil, nil
	}

	return &messaging.Embed{
		Title: fmt.Sprintf(":tada:  Happy Birthday to %s!  :tada:", metadata.CollectionName),
		URL:   metadata.ExternalURL,
		Color: EmbedColor,
		Description: fmt.Sprintf(
			"%s was released on this day in %d! What are your favorite outputs from %s? [Explore the full project here](%s)",
			project.Name, project.StartTime.Year(), project.Name, metadata.ExternalURL,
		),
		ImageURL: r.previews.Resolve(ctx, metadata.PreviewAssetURL),
		Footer:   metadata.Name,
	}, nil
}

// Title formats "<name> - <artist>" with the partner platform prefixed
func Title(metadata *domain.TokenMetadata) string {
	title := fmt.Sprintf("%s - %s", metadata.Name, metadata.Artist)

	platform := metadata.Platform
	if platform == "" || strings.Contains(platform, "Art Blocks") {
		return title
	}
	if platform == "MOMENT" {
		platform = "Bright Moments"
	}
	return fmt.Sprintf("%s - %s", platform, title)
}

// FeaturesField lists "key: value" lines in key order
func FeaturesField(features map[string]any) string {
	if len(features) == 0 {
		return "Not yet available."
	}

	keys := make([]string, 0, len(features))
	for k := range features {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, features[k]))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) ownerField(ctx context.Context, contractAddress, tokenID string) string {
	owner, err := r.ownerOf(ctx, contractAddress, tokenID)
	if err != nil || owner == "" {
		if err != nil {
			logger.WarnCtx(ctx, "Failed to get token owner",
				zap.String("contract", contractAddress),
				zap.String("tokenID", tokenID),
				zap.Error(err))
		}
		return "Unknown"
	}

	display := domain.ShortenAddress(owner)
	if r.names != nil {
		name, err := r.names.LookupENS(ctx, owner)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to look up ENS name", zap.String("address", owner), zap.Error(err))
		} else if name != "" {
			display = name
		}
	}

	return fmt.Sprintf("[%s](%s/user/%s)", display, r.siteURL, owner)
}

func (r *Renderer) ownerOf(ctx context.Context, contractAddress, tokenID string) (string, error) {
	owner, err := r.owners.GetTokenOwnerAddress(ctx, contractAddress, tokenID)
	if err == nil && owner != "" {
		return owner, nil
	}
	if r.chain == nil {
		return owner, err
	}

	chainOwner, chainErr := r.chain.ERC721OwnerOf(ctx, contractAddress, tokenID)
	if chainErr != nil {
		return "", errors.Join(err, chainErr)
	}
	if chainOwner == domain.ZeroAddress {
		return "", nil
	}
	return chainOwner, nil
}

func entryLines(entries []domain.NamedEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Name, e.Value))
	}
	return strings.Join(lines, "\n")
}
