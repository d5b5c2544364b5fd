package render

import (
	"context"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// sniffBytes is enough for mimetype to tell video containers from images
const sniffBytes = 512

// PreviewResolver picks a preview URL the chat client can render inline
type PreviewResolver struct {
	httpClient adapter.HTTPClient
}

// NewPreviewResolver creates a preview resolver
func NewPreviewResolver(httpClient adapter.HTTPClient) *PreviewResolver {
	return &PreviewResolver{httpClient: httpClient}
}

// Resolve returns url, or its GIF rendition when url points at a video
func (p *PreviewResolver) Resolve(ctx context.Context, url string) string {
	if url == "" {
		return url
	}

	if isVideoExtension(url) {
		return gifURL(url)
	}

	content, err := p.httpClient.Peek(ctx, url, sniffBytes)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to download preview for mime type detection",
			zap.String("url", url),
			zap.Error(err))
		return url
	}

	mtype := mimetype.Detect(content)
	logger.DebugCtx(ctx, "Detected preview mime type",
		zap.String("url", url),
		zap.String("mimeType", mtype.String()))

	if strings.HasPrefix(mtype.String(), "video/") {
		return gifURL(url)
	}
	return url
}

func isVideoExtension(url string) bool {
	switch strings.ToLower(path.Ext(stripQuery(url))) {
	case ".mp4", ".webm", ".mov":
		return true
	}
	return false
}

func gifURL(url string) string {
	base, query, hasQuery := strings.Cut(url, "?")
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base += ".gif"
	if hasQuery {
		return base + "?" + query
	}
	return base
}

func stripQuery(url string) string {
	base, _, _ := strings.Cut(url, "?")
	return base
}
