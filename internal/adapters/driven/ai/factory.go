// Package ai provides factory functions for creating generation engine
// adapters from settings.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/persona-labs/personagen-cli/internal/adapters/driven/llm/gemini"
	"github.com/persona-labs/personagen-cli/internal/adapters/driven/llm/ollama"
	"github.com/persona-labs/personagen-cli/internal/adapters/driven/llm/openai"
	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// CreateLLMService creates the generation engine adapter for the configured
// provider. The returned handle is process-scoped: construct it once and
// inject it wherever generation is needed.
func CreateLLMService(ctx context.Context, settings domain.LLMSettings) (driven.LLMService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: provider %q not configured", domain.ErrLLMUnavailable, settings.Provider)
	}

	switch settings.Provider {
	case domain.EngineOpenAI:
		return openai.NewLLMService(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
	case domain.EngineOllama:
		return ollama.NewLLMService(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil
	case domain.EngineGemini:
		return gemini.NewLLMService(ctx, gemini.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrLLMUnavailable, settings.Provider)
	}
}

// CreateAndValidateLLMService creates the engine and validates connectivity
// with a short ping before committing to a long generation call.
func CreateAndValidateLLMService(ctx context.Context, settings domain.LLMSettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'personagen settings set-llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// Ensure Validator implements the interface.
var _ driven.LLMConfigValidator = Validator{}

// Validator checks engine settings by constructing the adapter and
// pinging it, then discarding the handle.
type Validator struct{}

// ValidateLLM implements driven.LLMConfigValidator.
func (Validator) ValidateLLM(ctx context.Context, settings domain.LLMSettings) error {
	svc, err := CreateAndValidateLLMService(ctx, settings)
	if err != nil {
		return err
	}
	return svc.Close()
}
