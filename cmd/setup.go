package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/config"
	"github.com/theirongolddev/ccdash/internal/source"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	addr := cfg.Server.Addr
	theme := cfg.Appearance.Theme

	files, _ := source.ScanProjects(dataDir)
	fmt.Println()
	fmt.Println("  Welcome to ccdash!")
	if len(files) > 0 {
		fmt.Printf("  Found %d sessions in %s (%d projects)\n",
			len(files), dataDir, source.CountProjects(files))
	}
	fmt.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Claude data directory").
				Description("Where Claude Code keeps projects/ and stats-cache.json").
				Value(&dataDir),
			huh.NewInput().
				Title("Dashboard listen address").
				Description("Used by `ccdash serve`").
				Value(&addr),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DataDir = dataDir
	cfg.Server.Addr = addr
	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `ccdash setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
