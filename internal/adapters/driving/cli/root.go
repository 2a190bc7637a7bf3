// Package cli implements the command-line driving adapter.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
	"github.com/persona-labs/personagen-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "0.1.0-dev"

// Services wired by the composition root before Execute.
var (
	personaService  driving.PersonaService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "personagen",
	Short: "Generate user personas from Reddit activity",
	Long: `Personagen builds a user persona from a Reddit account's public
posts and comments.

It collects the account's recent activity, samples a small evidence set
and asks a text-generation engine (Ollama, OpenAI or Gemini) to write a
persona profile, saved as <output>/<username>_persona.txt.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services groups the dependencies the commands need.
type Services struct {
	Persona  driving.PersonaService
	Settings driving.SettingsService
}

// SetServices installs dependencies. Call before Execute.
func SetServices(s Services) {
	personaService = s.Persona
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so an
// interrupt cancels in-flight collection and generation calls.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
