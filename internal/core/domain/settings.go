package domain

// unknownDescription is returned for unrecognised enum values.
const unknownDescription = "Unknown"

// EngineProvider identifies a text-generation engine provider.
type EngineProvider string

// Available engine providers.
const (
	// EngineOllama is a local Ollama instance.
	EngineOllama EngineProvider = "ollama"

	// EngineOpenAI is the OpenAI cloud API.
	EngineOpenAI EngineProvider = "openai"

	// EngineGemini is the Google Gemini cloud API.
	EngineGemini EngineProvider = "gemini"
)

// IsValid returns true if the provider is recognised.
func (p EngineProvider) IsValid() bool {
	switch p {
	case EngineOllama, EngineOpenAI, EngineGemini:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p EngineProvider) RequiresAPIKey() bool {
	return p == EngineOpenAI || p == EngineGemini
}

// IsLocal returns true if this provider runs locally.
func (p EngineProvider) IsLocal() bool {
	return p == EngineOllama
}

// String returns the string representation.
func (p EngineProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p EngineProvider) Description() string {
	switch p {
	case EngineOllama:
		return "Ollama (local)"
	case EngineOpenAI:
		return "OpenAI (cloud)"
	case EngineGemini:
		return "Gemini (cloud)"
	default:
		return unknownDescription
	}
}

// AllEngineProviders returns all providers in menu order.
func AllEngineProviders() []EngineProvider {
	return []EngineProvider{EngineOllama, EngineOpenAI, EngineGemini}
}

// DefaultEngineModels returns the default model per provider.
func DefaultEngineModels() map[EngineProvider]string {
	return map[EngineProvider]string{
		EngineOllama: "llama3.2",
		EngineOpenAI: "gpt-4o-mini",
		EngineGemini: "gemini-2.5-flash",
	}
}

// RedditSettings holds Reddit API credentials.
type RedditSettings struct {
	// ClientID is the Reddit application client id.
	ClientID string

	// ClientSecret is the Reddit application client secret.
	ClientSecret string

	// UserAgent identifies this tool to the Reddit API.
	UserAgent string
}

// IsConfigured returns true if the Reddit credentials are set up.
func (r RedditSettings) IsConfigured() bool {
	return r.ClientID != "" && r.ClientSecret != ""
}

// LLMSettings holds generation engine configuration.
type LLMSettings struct {
	// Provider is the generation engine provider.
	Provider EngineProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI/Gemini).
	APIKey string
}

// IsConfigured returns true if the engine provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// OutputSettings holds persona output configuration.
type OutputSettings struct {
	// Dir is the directory persona files are written to.
	Dir string
}

// AppSettings aggregates all application configuration.
type AppSettings struct {
	// Reddit holds content provider credentials.
	Reddit RedditSettings

	// LLM holds generation engine settings.
	LLM LLMSettings

	// Output holds output artifact settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Credentials are left unconfigured; users must set them via
// 'personagen settings' or environment variables.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Reddit: RedditSettings{
			UserAgent: "personagen/1.0 (persona profiling CLI)",
		},
		LLM: LLMSettings{
			Provider: EngineOllama,
		},
		Output: OutputSettings{
			Dir: "output",
		},
	}
}
