package driving

import (
	"context"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get returns effective settings: stored values overlaid with
	// environment variables, defaults filling the gaps.
	Get() (*domain.AppSettings, error)

	// SetRedditCredentials stores Reddit API credentials. An empty
	// userAgent keeps the current value.
	SetRedditCredentials(clientID, clientSecret, userAgent string) error

	// SetLLMProvider configures the generation engine. An empty model
	// selects the provider default.
	SetLLMProvider(provider domain.EngineProvider, model, apiKey string) error

	// SetOutputDir stores the persona output directory.
	SetOutputDir(dir string) error

	// Validate checks that settings are sufficient for a generation run.
	Validate() error

	// ValidateLLMConfig verifies the configured engine is reachable.
	ValidateLLMConfig(ctx context.Context) error
}
