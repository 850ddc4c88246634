// Command volt is the Volt semantic analyzer CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"volt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "volt",
	Short:         "Volt language analyzer",
	Long:          "Volt analyzes Volt scripts and reports semantic diagnostics",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries an explicit process exit code through RunE.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.msg != "" {
				fmt.Fprintln(os.Stderr, exit.msg)
			}
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

// useColor resolves the --color mode against the actual output device and
// wires the global fatih/color switch to match.
func useColor(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	enabled := false
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		enabled = isTerminal(out)
	}
	color.NoColor = !enabled
	return enabled
}

func quietMode(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
