package reddit

import (
	"context"
	"time"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
)

// PermalinkBase is prepended to the relative permalinks Reddit returns.
const PermalinkBase = "https://reddit.com"

// Ensure Provider implements the interface.
var _ driven.ContentProvider = (*Provider)(nil)

// Provider adapts the Reddit API client to the ContentProvider port.
type Provider struct {
	client *Client
}

// NewProvider creates a new Reddit content provider.
func NewProvider(cfg Config) (*Provider, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Provider{client: client}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "reddit"
}

// ListSubmissions returns the account's newest posts, capped at limit.
// The listing order is preserved as returned by the API.
func (p *Provider) ListSubmissions(ctx context.Context, accountID string, limit int) ([]domain.ContentItem, error) {
	page, err := p.client.listUserContent(ctx, accountID, "submitted", limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(page.Data.Children))
	for _, child := range page.Data.Children {
		if child.Kind != kindLink {
			continue
		}
		items = append(items, domain.NewContentItem(
			domain.KindPost,
			child.Data.Title,
			child.Data.Selftext,
			child.Data.Subreddit,
			time.Unix(int64(child.Data.CreatedUTC), 0).UTC(),
			PermalinkBase+child.Data.Permalink,
		))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

// ListComments returns the account's newest comments, capped at limit.
func (p *Provider) ListComments(ctx context.Context, accountID string, limit int) ([]domain.ContentItem, error) {
	page, err := p.client.listUserContent(ctx, accountID, "comments", limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(page.Data.Children))
	for _, child := range page.Data.Children {
		if child.Kind != kindComment {
			continue
		}
		items = append(items, domain.NewContentItem(
			domain.KindComment,
			"",
			child.Data.Body,
			child.Data.Subreddit,
			time.Unix(int64(child.Data.CreatedUTC), 0).UTC(),
			PermalinkBase+child.Data.Permalink,
		))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

// Close releases resources.
func (p *Provider) Close() error {
	// The HTTP client needs no explicit cleanup.
	return nil
}
