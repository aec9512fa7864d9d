package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ccdash/internal/config"
	"github.com/theirongolddev/ccdash/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API and static frontend",
	RunE:  runServe,
}

func init() {
	cfg, _ := config.Load()
	serveCmd.Flags().StringVar(&flagAddr, "addr", cfg.Server.Addr, "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv := server.New(server.Config{
		DataDir:         flagDataDir,
		Addr:            flagAddr,
		RetentionMonths: flagRetention,
	})

	fmt.Printf("  ccdash listening on http://%s\n", flagAddr)
	fmt.Printf("  Serving data from %s\n", flagDataDir)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
