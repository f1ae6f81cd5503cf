package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/quanta"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quanta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quanta version %s\n", strings.TrimSpace(quanta.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
