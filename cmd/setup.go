package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"reelimages/internal/stock"
	"reelimages/internal/stock/pexels"
	"reelimages/internal/stock/unsplash"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for reelimages",
	Long:  `Collect the required API keys, optionally verify them, and write a .env file.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("🖼  Reelimages Setup"))

	if _, err := os.Stat(".env"); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(infoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := make(map[string]string)

	if err := configureRequiredKeys(env); err != nil {
		return err
	}

	if err := configureSecretManager(env); err != nil {
		return err
	}

	if err := verifyProviderKeys(cmd.Context(), env); err != nil {
		return err
	}

	return writeEnvFile(env)
}

func configureRequiredKeys(env map[string]string) error {
	var groqKey, pexelsKey, unsplashKey string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Groq API Key").
				Description("https://console.groq.com/keys").
				EchoMode(huh.EchoModePassword).
				Value(&groqKey).
				Validate(required("Groq API Key")),
			huh.NewInput().
				Title("Pexels API Key").
				Description("https://www.pexels.com/api/new/").
				EchoMode(huh.EchoModePassword).
				Value(&pexelsKey).
				Validate(required("Pexels API Key")),
			huh.NewInput().
				Title("Unsplash Access Key").
				Description("https://unsplash.com/developers").
				EchoMode(huh.EchoModePassword).
				Value(&unsplashKey).
				Validate(required("Unsplash Access Key")),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	env["GROQ_API_KEY"] = strings.TrimSpace(groqKey)
	env["PEXELS_API_KEY"] = strings.TrimSpace(pexelsKey)
	env["UNSPLASH_ACCESS_KEY"] = strings.TrimSpace(unsplashKey)
	return nil
}

func configureSecretManager(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Use Google Secret Manager?").
		Description("Keys missing from the environment are looked up in your GCP project (optional)").
		Value(&setup).
		Run(); err != nil {
		return err
	}

	if !setup {
		return nil
	}

	var project string
	if err := huh.NewInput().
		Title("Google Cloud Project ID").
		Value(&project).
		Run(); err != nil {
		return err
	}

	project = strings.TrimSpace(project)
	if project != "" {
		env["GOOGLE_CLOUD_PROJECT"] = project
	}
	return nil
}

func verifyProviderKeys(ctx context.Context, env map[string]string) error {
	var verify bool
	if err := huh.NewConfirm().
		Title("Verify provider keys now?").
		Description("Makes one test search against each provider").
		Value(&verify).
		Run(); err != nil {
		return err
	}

	if !verify {
		return nil
	}

	checks := []struct {
		name     string
		searcher stock.Searcher
	}{
		{"Pexels", pexels.NewClient(env["PEXELS_API_KEY"])},
		{"Unsplash", unsplash.NewClient(env["UNSPLASH_ACCESS_KEY"])},
	}

	for _, check := range checks {
		err := runWithSpinner("Verifying "+check.name+" key", func() error {
			_, err := check.searcher.Search(ctx, "nature", 1)
			return err
		})
		if err != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("%s check failed: %v", check.name, err)))
		}
	}
	return nil
}

func writeEnvFile(env map[string]string) error {
	f, err := os.Create(".env")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	order := []string{
		"GOOGLE_CLOUD_PROJECT",
		"GROQ_API_KEY",
		"PEXELS_API_KEY",
		"UNSPLASH_ACCESS_KEY",
	}

	for _, key := range order {
		if val, ok := env[key]; ok && val != "" {
			_, _ = fmt.Fprintf(f, "%s=%s\n", key, val)
		}
	}

	fmt.Println(successStyle.Render("✓ Created .env file"))
	printNextSteps()
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println("  1. Run: reelimages fetch")
	fmt.Println("  2. Paste your script, then press Enter twice")
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ " + title))
	return nil
}
