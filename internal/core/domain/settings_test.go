package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineProvider_IsValid(t *testing.T) {
	assert.True(t, EngineOllama.IsValid())
	assert.True(t, EngineOpenAI.IsValid())
	assert.True(t, EngineGemini.IsValid())
	assert.False(t, EngineProvider("gpt2").IsValid())
}

func TestEngineProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, EngineOllama.RequiresAPIKey())
	assert.True(t, EngineOpenAI.RequiresAPIKey())
	assert.True(t, EngineGemini.RequiresAPIKey())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	assert.False(t, LLMSettings{}.IsConfigured())
	assert.False(t, LLMSettings{Provider: EngineOpenAI}.IsConfigured())
	assert.True(t, LLMSettings{Provider: EngineOpenAI, APIKey: "sk-test"}.IsConfigured())
	assert.True(t, LLMSettings{Provider: EngineOllama}.IsConfigured())
}

func TestRedditSettings_IsConfigured(t *testing.T) {
	assert.False(t, RedditSettings{}.IsConfigured())
	assert.False(t, RedditSettings{ClientID: "id"}.IsConfigured())
	assert.True(t, RedditSettings{ClientID: "id", ClientSecret: "secret"}.IsConfigured())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, EngineOllama, settings.LLM.Provider)
	assert.Equal(t, "output", settings.Output.Dir)
	assert.NotEmpty(t, settings.Reddit.UserAgent)
	assert.False(t, settings.Reddit.IsConfigured())
}

func TestDefaultEngineModels_CoversAllProviders(t *testing.T) {
	models := DefaultEngineModels()
	for _, p := range AllEngineProviders() {
		assert.NotEmpty(t, models[p], "no default model for %s", p)
	}
}

func TestPersonaStatus_IsValid(t *testing.T) {
	assert.True(t, StatusGenerated.IsValid())
	assert.True(t, StatusNoEvidence.IsValid())
	assert.True(t, StatusFailed.IsValid())
	assert.False(t, PersonaStatus("partial").IsValid())
}
