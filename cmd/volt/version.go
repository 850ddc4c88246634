package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"volt/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the analyzer version and build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		if useColor(cmd, os.Stdout) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Pretty())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}
