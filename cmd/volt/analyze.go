package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"volt/internal/diagfmt"
	"volt/internal/driver"
	"volt/internal/project"
	"volt/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [paths...]",
	Short: "Analyze Volt sources and report diagnostics",
	Long: `Analyze runs semantic analysis over the given files or directories.
With no arguments it discovers the project through volt.toml and analyzes
the manifest's source roots.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	analyzeCmd.Flags().Int("max-diagnostics", 0, "cap reported diagnostics (0 = manifest setting or unlimited)")
	analyzeCmd.Flags().Int("jobs", 0, "parse workers (0 = manifest setting or one per CPU)")
	analyzeCmd.Flags().Bool("timings", false, "print per-phase timings to stderr")
	analyzeCmd.Flags().Bool("no-cache", false, "bypass the analysis cache")
	analyzeCmd.Flags().Bool("strict", false, "exit with status 1 when errors are reported")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := diagfmt.ParseFormat(formatFlag)
	if err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	jobs, _ := cmd.Flags().GetInt("jobs")
	timings, _ := cmd.Flags().GetBool("timings")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	strict, _ := cmd.Flags().GetBool("strict")

	colorOn := useColor(cmd, os.Stdout)
	quiet := quietMode(cmd)

	m, _, err := project.Load(manifestStartDir(args))
	if err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}
	if jobs == 0 {
		jobs = m.Config.Build.Jobs
	}

	opts := driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiags,
		NoCache:        noCache,
	}

	var res *driver.Result
	if showProgress(quiet, format) {
		res, err = runAnalyzeWithUI(cmd, m, args, opts)
	} else {
		res, err = driver.Run(cmd.Context(), m, args, opts)
	}
	if err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("error: %v", err)}
	}

	renderOpts := diagfmt.Options{
		Color:    colorOn && format == diagfmt.FormatPretty,
		Notes:    true,
		PathMode: "relative",
		BaseDir:  m.Root,
	}
	if err := diagfmt.Render(os.Stdout, format, res.FileSet, res.Bag.Items(), renderOpts); err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("error: %v", err)}
	}

	if timings {
		fmt.Fprint(os.Stderr, res.Timer.Summary())
	}
	if !quiet && format == diagfmt.FormatPretty && res.Bag.Len() > 0 {
		fmt.Fprintf(os.Stderr, "%d diagnostics (%d errors)\n", res.Bag.Len(), res.Bag.ErrorCount())
	}

	if strict && res.Bag.HasErrors() {
		return &exitError{code: 1}
	}
	return nil
}

// manifestStartDir picks where the volt.toml walk-up begins: the first path
// argument when given, the working directory otherwise.
func manifestStartDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		return args[0]
	}
	return filepath.Dir(args[0])
}

// showProgress gates the interactive view: a TTY on stderr, human-readable
// output and no --quiet.
func showProgress(quiet bool, format diagfmt.Format) bool {
	return !quiet && format == diagfmt.FormatPretty && isTerminal(os.Stderr)
}

func runAnalyzeWithUI(cmd *cobra.Command, m *project.Manifest, args []string, opts driver.Options) (*driver.Result, error) {
	type outcome struct {
		res *driver.Result
		err error
	}
	events := make(chan ui.Event, 256)
	outCh := make(chan outcome, 1)

	go func() {
		opts.Progress = ui.ChannelSink{Ch: events}
		res, err := driver.Run(cmd.Context(), m, args, opts)
		outCh <- outcome{res, err}
		close(events)
	}()

	model := ui.NewAnalyzeModel("analyzing", events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	out := <-outCh
	if out.err == nil && uiErr != nil {
		return out.res, uiErr
	}
	return out.res, out.err
}
