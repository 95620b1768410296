package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/devsession"
	"github.com/aretw0/devsession/internal/cli"
	"github.com/aretw0/devsession/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Serves the session cache as a JSON API over HTTP, with /health and /metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, logger, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		addr := cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner(cmd.ErrOrStderr(), devsession.Version)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunServe(ctx, svc, addr, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides http.addr)")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the startup banner")
}
