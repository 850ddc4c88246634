package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize file.vt",
	Short: "Dump the token stream of one source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	colorOn := useColor(cmd, os.Stdout)

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("error: failed to load %s: %v", args[0], err)}
	}

	bag := diag.NewBag(0)
	toks := lexer.New(fs.Get(id), diag.BagReporter{Bag: bag}).Tokenize()

	out := bufio.NewWriter(os.Stdout)
	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		start, _ := fs.Resolve(t.Span)
		fmt.Fprintf(out, "%4d:%-3d %-14s %q\n", start.Line, start.Col, t.Kind, t.Text)
	}
	if err := out.Flush(); err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("error: %v", err)}
	}

	if bag.Len() > 0 {
		opts := diagfmt.Options{Color: colorOn && isTerminal(os.Stderr)}
		if err := diagfmt.Pretty(os.Stderr, fs, bag.Items(), opts); err != nil {
			return &exitError{code: 2, msg: fmt.Sprintf("error: %v", err)}
		}
	}
	return nil
}
