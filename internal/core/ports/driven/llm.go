package driven

import (
	"context"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

// LLMService provides text generation for persona synthesis.
//
// Implementations may include:
//   - OpenAI (GPT-4 family)
//   - Gemini (Google cloud API)
//   - Ollama (local models)
//
// The underlying model handle is expected to be initialised once per
// process and reused read-only across calls; implementations are
// constructed by the ai factory and injected into the synthesizer.
type LLMService interface {
	// Generate produces text completion from a prompt. The call may block
	// for tens of seconds; cancellation is the caller's responsibility via
	// ctx.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test
	// request. Used at startup before committing to a long generation call.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// LLMConfigValidator verifies that engine settings can actually serve
// requests, typically by constructing the adapter and pinging it.
type LLMConfigValidator interface {
	ValidateLLM(ctx context.Context, settings domain.LLMSettings) error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// Candidates is the number of output sequences requested.
	// Only the first is returned; defaults to 1.
	Candidates int
}
