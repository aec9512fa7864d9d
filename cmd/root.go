// Package cmd wires the ccdash command tree.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/config"
	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/pipeline"
	"github.com/theirongolddev/ccdash/internal/source"
)

var (
	flagDataDir   string
	flagRetention int
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "ccdash",
	Short: "Claude Code usage dashboard",
	Long:  "Aggregate local Claude Code session logs into usage statistics:\na JSON artifact, an HTTP dashboard, and terminal views.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	defaultDataDir := cfg.General.DataDir
	if defaultDataDir == "" {
		defaultDataDir = config.DefaultDataDir()
	}

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", defaultDataDir, "Claude data directory")
	rootCmd.PersistentFlags().IntVar(&flagRetention, "retention", cfg.General.RetentionMonths, "Retention window in months for time buckets")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadScan is the shared data loading path used by all commands.
func loadScan() (*pipeline.ScanResult, error) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning sessions in %s...\n", flagDataDir)
	}

	scan, err := pipeline.Scan(flagDataDir, time.Now(), flagRetention)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && len(scan.Sessions) > 0 {
		fmt.Fprintf(os.Stderr, "  Parsed %d sessions across %d projects\n",
			len(scan.Sessions), len(scan.Projects))
	}
	return scan, nil
}

// loadCache reads the usage cache, warning instead of failing: batch and
// terminal modes continue with scan data only.
func loadCache() *model.UsageCache {
	cache, err := source.ReadUsageCache(flagDataDir)
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Warning: %v (continuing without cache)\n", err)
		}
		return nil
	}
	return cache
}

// buildDashboard runs the full pipeline once: scan, cache, shape.
func buildDashboard() (model.Dashboard, *pipeline.ScanResult, error) {
	scan, err := loadScan()
	if err != nil {
		return model.Dashboard{}, nil, err
	}
	return pipeline.BuildDashboard(scan, loadCache(), time.Now()), scan, nil
}
