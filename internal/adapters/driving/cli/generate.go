package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
)

var (
	generateLimit   int
	generateSamples int
	generateOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [profile-url-or-name]",
	Short: "Generate a persona for a Reddit account",
	Long: `Collects the account's recent posts and comments, samples the most
recent items with usable text and asks the configured generation engine
for a persona profile.

The account may be given as a full profile URL
(https://www.reddit.com/user/kojied/) or as a bare username.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateLimit, "limit", "n", 25, "maximum posts and comments fetched per content type")
	generateCmd.Flags().IntVar(&generateSamples, "samples", domain.DefaultSampleSize, "evidence items included in the prompt")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (defaults to the configured one)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if personaService == nil {
		return errors.New("persona service not configured")
	}

	result, err := personaService.GeneratePersona(cmd.Context(), args[0], driving.GenerateOptions{
		Limit:      generateLimit,
		SampleSize: generateSamples,
		OutputDir:  generateOutput,
	})
	if err != nil {
		return describeGenerateError(err)
	}

	switch result.Document.Status {
	case domain.StatusGenerated:
		cmd.Println(successStyle.Render(fmt.Sprintf("Persona for u/%s written to %s", result.AccountID, result.OutputPath)))
		cmd.Printf("Analyzed %d items.\n", result.ItemCount)
	case domain.StatusNoEvidence:
		cmd.Println(warnStyle.Render(fmt.Sprintf("u/%s has activity but none of it carries usable text.", result.AccountID)))
		cmd.Printf("A warning document was written to %s\n", result.OutputPath)
	case domain.StatusFailed:
		cmd.Println(errorStyle.Render("The generation engine failed; the collected evidence was preserved."))
		cmd.Printf("See %s for the error and the analyzed data.\n", result.OutputPath)
	}

	return nil
}

// describeGenerateError turns typed pipeline errors into actionable
// messages. Unknown errors pass through wrapped.
func describeGenerateError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("not a Reddit profile URL or username: %w", err)
	case errors.Is(err, domain.ErrAccountNotFound):
		return fmt.Errorf("account does not exist or is suspended: %w", err)
	case errors.Is(err, domain.ErrAuthInvalid):
		return fmt.Errorf("%w\nRun 'personagen settings set-reddit' to update credentials", err)
	case errors.Is(err, domain.ErrRateLimited):
		return fmt.Errorf("%w\nReddit is throttling requests; wait a minute and retry", err)
	case errors.Is(err, domain.ErrLLMUnavailable):
		return fmt.Errorf("%w\nRun 'personagen settings set-llm' to configure the engine", err)
	case errors.Is(err, domain.ErrNoContent):
		return fmt.Errorf("nothing to analyze: %w", err)
	default:
		return fmt.Errorf("generation failed: %w", err)
	}
}
