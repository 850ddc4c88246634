package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"volt/internal/diag"
	"volt/internal/source"
)

// Pretty renders the caret-annotated report:
//
//	[<CODE>] At <file>:<line>:<col>
//	<verbatim source line>
//	<indent>^^^
//	<message>
//	  <note>
//
// Diagnostics are separated by exactly one blank line and the report ends
// with a single trailing newline. The byte output with Color off is the
// compatibility contract golden tests pin down.
func Pretty(w io.Writer, fs *source.FileSet, diags []diag.Diagnostic, opts Options) error {
	codeStyle := color.New(color.FgRed, color.Bold)
	caretStyle := color.New(color.FgRed)
	posStyle := color.New(color.Faint)
	for _, style := range []*color.Color{codeStyle, caretStyle, posStyle} {
		if opts.Color {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}

	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := prettyOne(w, fs, d, opts, codeStyle, caretStyle, posStyle); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts Options, codeStyle, caretStyle, posStyle *color.Color) error {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := file.FormatPath(opts.PathMode, opts.BaseDir)

	header := fmt.Sprintf("%s %s",
		codeStyle.Sprintf("[%s]", d.Code.ID()),
		posStyle.Sprintf("At %s:%d:%d", path, start.Line, start.Col))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	line := file.GetLine(start.Line)
	if line != "" {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		indent, carets := caretLine(line, start.Col, d.Primary.Len())
		if _, err := fmt.Fprintln(w, indent+caretStyle.Sprint(carets)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, d.Message); err != nil {
		return err
	}
	for _, n := range d.Notes {
		if _, err := fmt.Fprintln(w, "  "+n.Msg); err != nil {
			return err
		}
	}
	return nil
}

// caretLine computes the indent and caret run for a span starting at the
// 1-based byte column col and spanning length bytes. The underline is
// measured in display cells and clamped to the line end; a zero-width span
// still gets one caret. Tabs in the prefix are copied through so the carets
// line up under tabbed source.
func caretLine(line string, col uint32, length uint32) (indent, carets string) {
	startByte := int(col) - 1
	if startByte > len(line) {
		startByte = len(line)
	}
	endByte := startByte + int(length)
	if endByte > len(line) {
		endByte = len(line)
	}

	var ind strings.Builder
	for _, r := range line[:startByte] {
		if r == '\t' {
			ind.WriteByte('\t')
		} else {
			ind.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}

	width := runewidth.StringWidth(line[startByte:endByte])
	if width < 1 {
		width = 1
	}
	return ind.String(), strings.Repeat("^", width)
}
