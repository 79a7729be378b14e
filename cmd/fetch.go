package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"reelimages/internal/app"
	"reelimages/internal/script"
	"reelimages/pkg/config"

	"github.com/spf13/cobra"
)

var fetchFile string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download stock photos matching a script",
	Long: `Extract 3-5 visual search terms from a script, search Pexels and
Unsplash for each term, and download the selected images into a
timestamped folder under the configured base directory.

The script is pasted into the console by default; finish entry with two
consecutive empty lines. Use --file to read it from disk instead.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchFile, "file", "f", "", "Read the script from a file instead of the console")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if missing := cfg.MissingKeys(); len(missing) > 0 {
		fmt.Println(warnStyle.Render("Missing API keys:"))
		for _, key := range missing {
			fmt.Println(warnStyle.Render("  - " + key))
		}
		fmt.Println(infoStyle.Render("Set them in the environment or a .env file, or run: reelimages setup"))
		return errors.New("missing credentials")
	}

	scriptText, err := readScript()
	if err != nil {
		return err
	}
	if scriptText == "" {
		return errors.New("no script provided")
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Received script (%d characters)", len(scriptText))))

	service, err := app.BuildService(cfg)
	if err != nil {
		return err
	}

	result, err := app.NewPipeline(service).Fetch(ctx, scriptText)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Downloaded %d/%d images", result.Downloaded, result.Total)))
	fmt.Println(infoStyle.Render("Location: " + result.OutputDir))

	openFolder(result.OutputDir)
	return nil
}

func readScript() (string, error) {
	if fetchFile != "" {
		data, err := os.ReadFile(fetchFile)
		if err != nil {
			return "", fmt.Errorf("read script file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	fmt.Println(titleStyle.Render("Paste your script below"))
	fmt.Println(infoStyle.Render("When done, press Enter twice (empty line) to continue:"))
	fmt.Println()

	return script.Read(os.Stdin)
}

// openFolder reveals the output directory in the platform file manager.
// Best effort only.
func openFolder(dir string) {
	var open *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		open = exec.Command("open", dir)
	case "linux":
		open = exec.Command("xdg-open", dir)
	default:
		return
	}
	if err := open.Start(); err != nil {
		slog.Debug("Could not open output folder", "error", err)
	}
}
