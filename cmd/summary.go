package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Usage summary with per-model cost estimates",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	dash, scan, err := buildDashboard()
	if err != nil {
		return err
	}

	if len(scan.Sessions) == 0 && dash.Summary.TotalSessions == 0 {
		fmt.Println("\n  No Claude Code sessions found.")
		fmt.Println("  Use Claude Code first, then come back!")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CLAUDE CODE USAGE"))
	fmt.Println()

	s := dash.Summary
	rows := [][]string{
		{"Sessions", cli.FormatNumber(int64(s.TotalSessions))},
		{"Messages", cli.FormatNumber(int64(s.TotalMessages))},
		{"Tool Calls", cli.FormatNumber(int64(s.TotalToolCalls))},
		{"Projects", cli.FormatNumber(int64(s.TotalProjects))},
		{"Active Days", cli.FormatNumber(int64(s.ActiveDays))},
		{"---"},
		{"Cost (est)", cli.FormatCost(s.EstimatedCost)},
	}
	if !s.LastActivity.IsZero() {
		rows = append(rows, []string{"Last Activity", s.LastActivity.Local().Format(time.RFC822)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(dash.ModelUsage) > 0 {
		fmt.Println()
		modelRows := make([][]string, 0, len(dash.ModelUsage))
		for _, m := range dash.ModelUsage {
			modelRows = append(modelRows, []string{
				m.Model,
				cli.FormatNumber(int64(m.Sessions)),
				cli.FormatTokens(m.InputTokens),
				cli.FormatTokens(m.OutputTokens),
				cli.FormatCost(m.EstimatedCost),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Models",
			Headers: []string{"Model", "Sessions", "Input", "Output", "Cost"},
			Rows:    modelRows,
		}))
	}

	if len(dash.Insights) > 0 {
		fmt.Println()
		for _, line := range dash.Insights {
			fmt.Printf("  • %s\n", line)
		}
	}
	fmt.Println()
	return nil
}
