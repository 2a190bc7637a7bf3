package services

import (
	"context"
	"fmt"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
	"github.com/persona-labs/personagen-cli/internal/logger"
)

// DefaultCollectLimit bounds items fetched per content type.
const DefaultCollectLimit = 25

// CollectorService retrieves an account's recent posts and comments and
// normalises them into one ordered sequence: posts first, then comments,
// each internally newest-first as returned by the provider. The order is
// never re-sorted; downstream sampling depends on it.
type CollectorService struct {
	provider driven.ContentProvider
}

// NewCollectorService creates a new collector backed by the given provider.
func NewCollectorService(provider driven.ContentProvider) *CollectorService {
	return &CollectorService{provider: provider}
}

// Collect fetches up to limit submissions and up to limit comments for the
// account, so a run yields between 0 and 2*limit items.
//
// Provider failures are returned as typed errors (domain.ErrAccountNotFound,
// domain.ErrRateLimited, domain.ErrProviderUnavailable wrappings) so callers
// can distinguish "no data" from "provider broken" without string
// inspection. The orchestration layer downgrades them to a diagnostic plus
// an empty result.
func (s *CollectorService) Collect(ctx context.Context, accountID string, limit int) ([]domain.ContentItem, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: empty account id", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultCollectLimit
	}

	logger.Section("Content Collection")
	logger.Debug("Account: %s, limit: %d per content type", accountID, limit)

	posts, err := s.provider.ListSubmissions(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions for %s: %w", accountID, err)
	}
	logger.Debug("Fetched %d submissions", len(posts))

	comments, err := s.provider.ListComments(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments for %s: %w", accountID, err)
	}
	logger.Debug("Fetched %d comments", len(comments))

	items := make([]domain.ContentItem, 0, len(posts)+len(comments))
	items = append(items, posts...)
	items = append(items, comments...)

	logger.Info("Collected %d items for %s", len(items), accountID)
	return items, nil
}
