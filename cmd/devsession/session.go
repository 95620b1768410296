package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/devsession/internal/cli"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <device-id>",
	Short: "Print the cached sessions of a device",
	Long:  `Prints the cached session entry of a device. A device with nothing cached prints an empty session list.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, _, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		format, _ := cmd.Flags().GetString("output")
		return cli.RunGet(cmd.Context(), svc, args[0], format, cmd.OutOrStdout())
	},
}

var putCmd = &cobra.Command{
	Use:   "put <device-id>",
	Short: "Replace the cached sessions of a device",
	Long:  `Reads a session entry ({"sessions":[...]}) as JSON and stores it for the device, replacing any previous entry.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		var in io.Reader = cmd.InOrStdin()
		if path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("error opening entry file: %w", err)
			}
			defer f.Close()
			in = f
		}

		svc, _, _, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunPut(cmd.Context(), svc, args[0], in, cmd.OutOrStdout())
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List devices with a cached entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, _, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunList(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <device-id>...",
	Short: "Remove the cached entries of one or more devices",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, _, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunRemove(cmd.Context(), svc, args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(getCmd, putCmd, lsCmd, rmCmd)
	getCmd.Flags().StringP("output", "o", cli.FormatJSON, "Output format: json or yaml")
	putCmd.Flags().StringP("file", "f", "-", "Entry file to read, - for stdin")
}
