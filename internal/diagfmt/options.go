// Package diagfmt renders diagnostic bags for humans and tooling: the
// caret-annotated pretty report, the line-oriented short format used by
// golden tests, and a JSON array for IDE integrations.
package diagfmt

import "fmt"

// Format selects a renderer.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatShort  Format = "short"
	FormatJSON   Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPretty, FormatShort, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (expected pretty, short or json)", s)
}

// Options control rendering. The zero value is the plain, golden-stable
// configuration.
type Options struct {
	// Color enables ANSI styling in the pretty renderer. Never enabled for
	// golden or piped output.
	Color bool
	// Notes emits note lines in the short renderer.
	Notes bool
	// PathMode is passed through to File.FormatPath: "", "absolute",
	// "relative", "basename" or "auto".
	PathMode string
	// BaseDir anchors relative path rendering.
	BaseDir string
}
