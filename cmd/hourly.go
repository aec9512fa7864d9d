package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/cli"
)

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Activity by hour of day and day of week",
	RunE:  runHourly,
}

func init() {
	rootCmd.AddCommand(hourlyCmd)
}

func runHourly(_ *cobra.Command, _ []string) error {
	scan, err := loadScan()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITY  Last %dmo (local time)", flagRetention)))
	fmt.Println()

	hours := scan.Acc.Hourly
	maxCount := 0
	for _, n := range hours {
		if n > maxCount {
			maxCount = n
		}
	}

	const maxBarWidth = 40
	for h, n := range hours {
		barLen := 0
		if maxCount > 0 {
			barLen = n * maxBarWidth / maxCount
		}
		fmt.Printf("  %02d:00 │ %6s │ %s\n", h, cli.FormatNumber(int64(n)), strings.Repeat("█", barLen))
	}

	fmt.Println()
	for d, n := range scan.Acc.Weekday {
		barLen := 0
		if maxCount > 0 {
			barLen = n * maxBarWidth / maxCount
		}
		fmt.Printf("  %s   │ %6s │ %s\n",
			time.Weekday(d).String()[:3], cli.FormatNumber(int64(n)), strings.Repeat("█", barLen))
	}

	peak := 0
	for h, n := range hours {
		if n > hours[peak] {
			peak = h
		}
	}
	fmt.Printf("\n  Peak: %02d:00 (%s events)\n\n",
		peak, cli.FormatNumber(int64(hours[peak])))
	return nil
}
