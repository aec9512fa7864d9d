package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/cli"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project ranking by session count",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	scan, err := loadScan()
	if err != nil {
		return err
	}
	if len(scan.Projects) == 0 {
		fmt.Println("\n  No project data found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()

	rows := make([][]string, 0, len(scan.Projects))
	for _, p := range scan.Projects {
		last := ""
		if !p.LastActivity.IsZero() {
			last = p.LastActivity.Local().Format("2006-01-02")
		}
		rows = append(rows, []string{
			cli.Truncate(p.Name, 22),
			cli.FormatNumber(int64(p.Sessions)),
			cli.FormatNumber(int64(p.Messages)),
			cli.FormatNumber(int64(p.ToolCalls)),
			cli.Truncate(strings.Join(p.Branches, ", "), 24),
			last,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Sessions", "Messages", "Tools", "Branches", "Last Active"},
		Rows:    rows,
	}))
	return nil
}
