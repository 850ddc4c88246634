package diagfmt

import (
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/source"
)

func fixture() (*source.FileSet, []diag.Diagnostic) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/main.vt", []byte("class Pair {}\nclass Pair {}\n"))
	diags := []diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.SemaSymRedefinition,
			Message:  "'Pair' is already defined",
			Primary:  source.Span{File: id, Start: 20, End: 24},
		},
		{
			Severity: diag.SevError,
			Code:     diag.SemaMissingImpl,
			Message:  "'Pair' is missing implementations for the following members",
			Primary:  source.Span{File: id, Start: 6, End: 10},
			Notes: []diag.Note{
				{Msg: "func describe() -> String"},
			},
		},
	}
	return fs, diags
}

func TestPrettyGolden(t *testing.T) {
	fs, diags := fixture()
	var b strings.Builder
	if err := Pretty(&b, fs, diags, Options{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	want := "[SYM_REDEFINITION] At src/main.vt:2:7\n" +
		"class Pair {}\n" +
		"      ^^^^\n" +
		"'Pair' is already defined\n" +
		"\n" +
		"[MISSING_IMPL] At src/main.vt:1:7\n" +
		"class Pair {}\n" +
		"      ^^^^\n" +
		"'Pair' is missing implementations for the following members\n" +
		"  func describe() -> String\n"
	if b.String() != want {
		t.Fatalf("pretty output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestPrettyZeroWidthSpanGetsOneCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.vt", []byte("let x\n"))
	var b strings.Builder
	err := Pretty(&b, fs, []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.SynExpectSemicolon,
		Message:  "expected ';'",
		Primary:  source.Span{File: id, Start: 5, End: 5},
	}}, Options{})
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "[SYNTAX] At a.vt:1:6\n" +
		"let x\n" +
		"     ^\n" +
		"expected ';'\n"
	if b.String() != want {
		t.Fatalf("output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestShortGolden(t *testing.T) {
	fs, diags := fixture()
	var b strings.Builder
	if err := Short(&b, fs, diags, Options{Notes: true}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "error SYM_REDEFINITION src/main.vt:2:7 'Pair' is already defined\n" +
		"error MISSING_IMPL src/main.vt:1:7 'Pair' is missing implementations for the following members\n" +
		"  note func describe() -> String\n"
	if b.String() != want {
		t.Fatalf("short output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestJSONGolden(t *testing.T) {
	fs, diags := fixture()
	var b strings.Builder
	if err := JSON(&b, fs, diags[:1], Options{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := `[
  {
    "code": "SYM_REDEFINITION",
    "severity": "error",
    "file": "src/main.vt",
    "line": 2,
    "col": 7,
    "message": "'Pair' is already defined",
    "notes": []
  }
]
`
	if b.String() != want {
		t.Fatalf("json output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"pretty", "short", "json"} {
		if _, err := ParseFormat(ok); err != nil {
			t.Errorf("ParseFormat(%q) = %v", ok, err)
		}
	}
	if _, err := ParseFormat("fancy"); err == nil {
		t.Errorf("ParseFormat accepted an unknown format")
	}
}
