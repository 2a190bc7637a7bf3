// Command personagen generates user personas from Reddit activity.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/persona-labs/personagen-cli/internal/adapters/driven/ai"
	configfile "github.com/persona-labs/personagen-cli/internal/adapters/driven/config/file"
	"github.com/persona-labs/personagen-cli/internal/adapters/driven/reddit"
	storagefile "github.com/persona-labs/personagen-cli/internal/adapters/driven/storage/file"
	"github.com/persona-labs/personagen-cli/internal/adapters/driving/cli"
	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
	"github.com/persona-labs/personagen-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local development overrides; a missing .env file is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.Validator{})

	cli.SetServices(cli.Services{
		Persona:  &pipelineService{settings: settingsService},
		Settings: settingsService,
	})

	return cli.ExecuteContext(ctx)
}

// pipelineService assembles the generation pipeline from current settings
// on each run, so credentials configured via 'personagen settings' take
// effect without restarting and unrelated commands never open network
// connections.
type pipelineService struct {
	settings driving.SettingsService
}

func (p *pipelineService) GeneratePersona(ctx context.Context, accountRef string, opts driving.GenerateOptions) (domain.PersonaResult, error) {
	settings, err := p.settings.Get()
	if err != nil {
		return domain.PersonaResult{}, err
	}

	provider, err := reddit.NewProvider(reddit.Config{
		ClientID:     settings.Reddit.ClientID,
		ClientSecret: settings.Reddit.ClientSecret,
		UserAgent:    settings.Reddit.UserAgent,
	})
	if err != nil {
		return domain.PersonaResult{}, err
	}
	defer provider.Close()

	llm, err := ai.CreateLLMService(ctx, settings.LLM)
	if err != nil {
		return domain.PersonaResult{}, err
	}
	defer llm.Close()

	svc := services.NewPersonaService(
		services.NewCollectorService(provider),
		services.NewSynthesizerService(llm, 0),
		storagefile.NewPersonaStore(settings.Output.Dir),
	)
	return svc.GeneratePersona(ctx, accountRef, opts)
}
