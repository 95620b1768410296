package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/devsession"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of devsession",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "devsession version %s\n", strings.TrimSpace(devsession.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
