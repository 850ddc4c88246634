// Package version holds the build identity of the volt CLI. The variables
// are overridden at release time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String renders the full version line, appending commit and date when the
// build carries them.
func String() string {
	var b strings.Builder
	b.WriteString("volt " + Version)
	if GitCommit != "" {
		b.WriteString(" (" + GitCommit + ")")
	}
	if BuildDate != "" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Pretty renders the version with each semver component colorized. Falls
// back to the plain string when the version is not dotted semver.
func Pretty() string {
	base, rest := Version, ""
	if i := strings.IndexAny(base, "-+"); i >= 0 {
		base, rest = base[:i], base[i:]
	}
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return String()
	}
	colored := majorColor.Sprint(parts[0]) + "." +
		minorColor.Sprint(parts[1]) + "." +
		patchColor.Sprint(parts[2]) + rest
	out := "volt " + colored
	if GitCommit != "" {
		out += " (" + GitCommit + ")"
	}
	if BuildDate != "" {
		out += " built " + BuildDate
	}
	return out
}
