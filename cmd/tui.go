package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	dash, _, err := buildDashboard()
	if err != nil {
		return err
	}
	return tui.Run(dash)
}
