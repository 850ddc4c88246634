package diagfmt

import (
	"fmt"
	"io"

	"volt/internal/diag"
	"volt/internal/source"
)

// Short renders one line per diagnostic:
//
//	error SYM_REDEFINITION src/main.vt:3:7 'Pair' is already defined
//
// The format is stable and machine-diffable; notes follow as indented note
// lines when Options.Notes is set.
func Short(w io.Writer, fs *source.FileSet, diags []diag.Diagnostic, opts Options) error {
	for _, d := range diags {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		path := file.FormatPath(opts.PathMode, opts.BaseDir)
		_, err := fmt.Fprintf(w, "%s %s %s:%d:%d %s\n",
			d.Severity.Label(), d.Code.ID(), path, start.Line, start.Col, d.Message)
		if err != nil {
			return err
		}
		if !opts.Notes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  note %s\n", n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}
