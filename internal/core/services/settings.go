package services

import (
	"context"
	"fmt"
	"os"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyRedditClientID     = "reddit.client_id"
	keyRedditClientSecret = "reddit.client_secret"
	keyRedditUserAgent    = "reddit.user_agent"
	keyLLMProvider        = "llm.provider"
	keyLLMModel           = "llm.model"
	keyLLMBaseURL         = "llm.base_url"
	keyLLMAPIKey          = "llm.api_key"
	keyOutputDir          = "output.dir"
)

// Environment variables recognised as overrides. Values set in the
// environment win over the config file, so CI runs and one-off
// invocations never need a settings step.
//
//nolint:gosec // G101: variable names, not credentials.
const (
	envRedditClientID     = "REDDIT_CLIENT_ID"
	envRedditClientSecret = "REDDIT_CLIENT_SECRET"
	envRedditUserAgent    = "REDDIT_USER_AGENT"
	envLLMProvider        = "PERSONAGEN_LLM_PROVIDER"
	envLLMModel           = "PERSONAGEN_LLM_MODEL"
	envLLMBaseURL         = "PERSONAGEN_LLM_BASE_URL"
	envLLMAPIKey          = "PERSONAGEN_LLM_API_KEY"
	envOutputDir          = "PERSONAGEN_OUTPUT_DIR"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore  driven.ConfigStore
	llmValidator driven.LLMConfigValidator
}

// NewSettingsService creates a new settings service. llmValidator may be
// nil, in which case ValidateLLMConfig is a no-op.
func NewSettingsService(configStore driven.ConfigStore, llmValidator driven.LLMConfigValidator) *SettingsService {
	return &SettingsService{
		configStore:  configStore,
		llmValidator: llmValidator,
	}
}

// Get retrieves effective application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Reddit: domain.RedditSettings{
			ClientID:     s.getString(keyRedditClientID, envRedditClientID, ""),
			ClientSecret: s.getString(keyRedditClientSecret, envRedditClientSecret, ""),
			UserAgent:    s.getString(keyRedditUserAgent, envRedditUserAgent, defaults.Reddit.UserAgent),
		},
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, envLLMModel, defaults.LLM.Model),
			BaseURL:  s.getString(keyLLMBaseURL, envLLMBaseURL, ""),
			APIKey:   s.getString(keyLLMAPIKey, envLLMAPIKey, ""),
		},
		Output: domain.OutputSettings{
			Dir: s.getString(keyOutputDir, envOutputDir, defaults.Output.Dir),
		},
	}

	// Provider-specific key variables are a common convention; honour
	// them when nothing more specific is set.
	if settings.LLM.APIKey == "" {
		switch settings.LLM.Provider {
		case domain.EngineOpenAI:
			settings.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case domain.EngineGemini:
			settings.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	if settings.LLM.Model == "" {
		settings.LLM.Model = domain.DefaultEngineModels()[settings.LLM.Provider]
	}

	return settings, nil
}

// SetRedditCredentials stores Reddit API credentials.
func (s *SettingsService) SetRedditCredentials(clientID, clientSecret, userAgent string) error {
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("%w: client id and secret are required", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyRedditClientID, clientID); err != nil {
		return fmt.Errorf("save reddit client_id: %w", err)
	}
	if err := s.configStore.Set(keyRedditClientSecret, clientSecret); err != nil {
		return fmt.Errorf("save reddit client_secret: %w", err)
	}
	if userAgent != "" {
		if err := s.configStore.Set(keyRedditUserAgent, userAgent); err != nil {
			return fmt.Errorf("save reddit user_agent: %w", err)
		}
	}
	return nil
}

// SetLLMProvider configures the generation engine.
func (s *SettingsService) SetLLMProvider(provider domain.EngineProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid engine provider %q", domain.ErrInvalidInput, provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	if model == "" {
		model = domain.DefaultEngineModels()[provider]
	}

	if err := s.configStore.Set(keyLLMProvider, provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if apiKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, apiKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	return nil
}

// SetOutputDir stores the persona output directory.
func (s *SettingsService) SetOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyOutputDir, dir); err != nil {
		return fmt.Errorf("save output dir: %w", err)
	}
	return nil
}

// Validate checks that settings are sufficient for a generation run.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Reddit.IsConfigured() {
		return fmt.Errorf("%w: Reddit credentials not configured", domain.ErrAuthInvalid)
	}
	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: engine provider %q not configured", domain.ErrLLMUnavailable, settings.LLM.Provider)
	}
	return nil
}

// ValidateLLMConfig verifies the configured engine is reachable.
func (s *SettingsService) ValidateLLMConfig(ctx context.Context) error {
	if s.llmValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.llmValidator.ValidateLLM(ctx, settings.LLM)
}

// Helpers for reading config with env override and default.

func (s *SettingsService) getString(key, envVar, defaultVal string) string {
	val := s.configStore.GetString(key)
	if env := os.Getenv(envVar); env != "" {
		val = env
	}
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getProvider(defaultVal domain.EngineProvider) domain.EngineProvider {
	val := s.getString(keyLLMProvider, envLLMProvider, "")
	if val == "" {
		return defaultVal
	}
	provider := domain.EngineProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
