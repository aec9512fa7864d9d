package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/cli"
	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/pipeline"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Tool call and git branch rankings",
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(_ *cobra.Command, _ []string) error {
	scan, err := loadScan()
	if err != nil {
		return err
	}

	tools := pipeline.TopN(scan.Acc.ToolCounts, pipeline.TopTools)
	branches := pipeline.TopN(scan.Acc.BranchCounts, pipeline.TopBranches)

	if len(tools) == 0 && len(branches) == 0 {
		fmt.Println("\n  No tool or branch data found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TOOLS & BRANCHES"))
	fmt.Println()

	if len(tools) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Tool calls",
			Headers: []string{"Tool", "Calls"},
			Rows:    countRows(tools),
		}))
		fmt.Println()
	}
	if len(branches) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Git branches (first seen per session)",
			Headers: []string{"Branch", "Sessions"},
			Rows:    countRows(branches),
		}))
	}
	return nil
}

func countRows(counts []model.NameCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, nc := range counts {
		rows = append(rows, []string{
			cli.Truncate(nc.Name, 32),
			cli.FormatNumber(int64(nc.Count)),
		})
	}
	return rows
}
