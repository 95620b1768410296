package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/devsession/internal/cli"
	"github.com/aretw0/devsession/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devsession",
	Short: "devsession caches the active transport sessions of connected devices",
	Long: `devsession stores, per device, the set of active transport sessions in a
backing cache store (memory, Redis or files) and exposes it over a CLI and an HTTP API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./devsession.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

// openService loads the configuration and builds the cache it describes.
// The caller must Close the returned service.
func openService(cmd *cobra.Command) (*cli.Service, *config.Config, *slog.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")
	v := config.NewViper(configFile)
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := cli.CreateLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	svc, err := cli.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing session cache: %w", err)
	}
	return svc, cfg, logger, nil
}
