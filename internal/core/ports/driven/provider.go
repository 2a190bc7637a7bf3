package driven

import (
	"context"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

// ContentProvider lists an account's recent public content.
// It is an opaque paginated-list provider; the collector treats it as the
// single source of truth for ordering (newest first within each listing).
type ContentProvider interface {
	// Name returns the provider identifier (e.g. "reddit").
	Name() string

	// ListSubmissions returns the account's most recent posts, newest
	// first, capped at limit.
	ListSubmissions(ctx context.Context, accountID string, limit int) ([]domain.ContentItem, error)

	// ListComments returns the account's most recent comments, newest
	// first, capped at limit.
	ListComments(ctx context.Context, accountID string, limit int) ([]domain.ContentItem, error)

	// Close releases resources.
	Close() error
}
