package cli

import (
	"context"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
)

// mockPersonaService implements driving.PersonaService for command tests.
type mockPersonaService struct {
	result   domain.PersonaResult
	err      error
	lastRef  string
	lastOpts driving.GenerateOptions
}

func (m *mockPersonaService) GeneratePersona(_ context.Context, accountRef string, opts driving.GenerateOptions) (domain.PersonaResult, error) {
	m.lastRef = accountRef
	m.lastOpts = opts
	return m.result, m.err
}

// mockSettingsService implements driving.SettingsService for command tests.
type mockSettingsService struct {
	settings    domain.AppSettings
	validateErr error
	outputDir   string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) SetRedditCredentials(clientID, clientSecret, userAgent string) error {
	m.settings.Reddit = domain.RedditSettings{ClientID: clientID, ClientSecret: clientSecret, UserAgent: userAgent}
	return nil
}

func (m *mockSettingsService) SetLLMProvider(provider domain.EngineProvider, model, apiKey string) error {
	m.settings.LLM = domain.LLMSettings{Provider: provider, Model: model, APIKey: apiKey}
	return nil
}

func (m *mockSettingsService) SetOutputDir(dir string) error {
	m.outputDir = dir
	return nil
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) ValidateLLMConfig(context.Context) error {
	return nil
}

// setupTestServices installs mock services and returns a cleanup func
// restoring the previous ones.
func setupTestServices() (persona *mockPersonaService, settings *mockSettingsService, cleanup func()) {
	oldPersona := personaService
	oldSettings := settingsService

	persona = &mockPersonaService{
		result: domain.PersonaResult{
			AccountID: "kojied",
			Document: &domain.PersonaDocument{
				AccountID: "kojied",
				Text:      "persona text",
				Status:    domain.StatusGenerated,
			},
			OutputPath: "output/kojied_persona.txt",
			ItemCount:  7,
		},
	}
	settings = &mockSettingsService{settings: domain.DefaultAppSettings()}

	SetServices(Services{Persona: persona, Settings: settings})

	return persona, settings, func() {
		personaService = oldPersona
		settingsService = oldSettings
	}
}
