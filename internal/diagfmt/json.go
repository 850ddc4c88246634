package diagfmt

import (
	"encoding/json"
	"io"

	"volt/internal/diag"
	"volt/internal/source"
)

type jsonNote struct {
	File    string `json:"file,omitempty"`
	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	Code     string     `json:"code"`
	Severity string     `json:"severity"`
	File     string     `json:"file"`
	Line     uint32     `json:"line"`
	Col      uint32     `json:"col"`
	Message  string     `json:"message"`
	Notes    []jsonNote `json:"notes"`
}

// JSON renders the bag as an array of objects for tooling. Notes without a
// location carry only their message.
func JSON(w io.Writer, fs *source.FileSet, diags []diag.Diagnostic, opts Options) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		jd := jsonDiagnostic{
			Code:     d.Code.ID(),
			Severity: d.Severity.Label(),
			File:     file.FormatPath(opts.PathMode, opts.BaseDir),
			Line:     start.Line,
			Col:      start.Col,
			Message:  d.Message,
			Notes:    make([]jsonNote, 0, len(d.Notes)),
		}
		for _, n := range d.Notes {
			jn := jsonNote{Message: n.Msg}
			if !n.Span.Empty() || n.Span.Start != 0 {
				nf := fs.Get(n.Span.File)
				nstart, _ := fs.Resolve(n.Span)
				jn.File = nf.FormatPath(opts.PathMode, opts.BaseDir)
				jn.Line = nstart.Line
				jn.Col = nstart.Col
			}
			jd.Notes = append(jd.Notes, jn)
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Render dispatches on format.
func Render(w io.Writer, format Format, fs *source.FileSet, diags []diag.Diagnostic, opts Options) error {
	switch format {
	case FormatShort:
		return Short(w, fs, diags, opts)
	case FormatJSON:
		return JSON(w, fs, diags, opts)
	default:
		return Pretty(w, fs, diags, opts)
	}
}
