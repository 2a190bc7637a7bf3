package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure Reddit credentials, the generation engine and
the output directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsRedditCmd = &cobra.Command{
	Use:   "set-reddit",
	Short: "Configure Reddit API credentials",
	Long: `Configure the Reddit application credentials used to read public
activity. Create a "script" type app at
https://www.reddit.com/prefs/apps to obtain them.`,
	RunE: runSettingsReddit,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "set-llm",
	Short: "Configure the generation engine",
	Long:  `Configure the text-generation engine used to write personas.`,
	RunE:  runSettingsLLM,
}

var settingsOutputCmd = &cobra.Command{
	Use:   "set-output [dir]",
	Short: "Set the persona output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsOutput,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsRedditCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsOutputCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headerStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Reddit]")
	if settings.Reddit.ClientID != "" {
		cmd.Printf("  Client ID: %s\n", settings.Reddit.ClientID)
	} else {
		cmd.Printf("  Client ID: (not set)\n")
	}
	if settings.Reddit.ClientSecret != "" {
		cmd.Printf("  Client Secret: %s\n", maskSecret(settings.Reddit.ClientSecret))
	} else {
		cmd.Printf("  Client Secret: (not set)\n")
	}
	cmd.Printf("  User Agent: %s\n", settings.Reddit.UserAgent)
	status := "configured"
	if !settings.Reddit.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Engine]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.Provider.IsLocal() && settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskSecret(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status = "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Println(warnStyle.Render(fmt.Sprintf("Warning: %v", err)))
		cmd.Println("Run 'personagen settings set-reddit' and 'personagen settings set-llm' to finish setup.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsReddit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Print("Enter Reddit client ID: ")
	clientID := readLine(reader)
	if clientID == "" {
		return errors.New("client ID is required")
	}

	cmd.Print("Enter Reddit client secret: ")
	clientSecret := readPassword()
	cmd.Println()
	if clientSecret == "" {
		return errors.New("client secret is required")
	}

	cmd.Print("Enter user agent (blank keeps current): ")
	userAgent := readLine(reader)

	if err := settingsService.SetRedditCredentials(clientID, clientSecret, userAgent); err != nil {
		return fmt.Errorf("failed to save Reddit credentials: %w", err)
	}

	cmd.Println(successStyle.Render("Reddit credentials saved."))
	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select engine provider")
	providers := domain.AllEngineProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selected := providers[idx-1]

	defaultModel := domain.DefaultEngineModels()[selected]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selected.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selected, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure engine: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(cmd.Context()); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("engine validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Println(successStyle.Render(fmt.Sprintf("Engine configured: %s (%s)", selected.Description(), model)))
	return nil
}

func runSettingsOutput(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetOutputDir(args[0]); err != nil {
		return fmt.Errorf("failed to set output directory: %w", err)
	}

	cmd.Printf("Output directory set to %s\n", args[0])
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the secret without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
