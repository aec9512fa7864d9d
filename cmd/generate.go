package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the dashboard artifact JSON once and exit",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "dashboard-data.json", "Output artifact path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	dash, _, err := buildDashboard()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}
	if err := os.WriteFile(flagOut, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Wrote %s (%d sessions, %d projects)\n",
			flagOut, dash.Summary.TotalSessions, dash.Summary.TotalProjects)
	}
	return nil
}
