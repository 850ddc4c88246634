package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestStringIncludesOptionalFields(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := String(); got != "volt 1.2.3" {
		t.Fatalf("String() = %q", got)
	}

	GitCommit = "abc123"
	BuildDate = "2026-08-25T00:00:00Z"
	got := String()
	if got != "volt 1.2.3 (abc123) built 2026-08-25T00:00:00Z" {
		t.Fatalf("String() = %q", got)
	}
}

func TestPrettyFallsBackOnOddVersions(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "nightly"
	if got := Pretty(); got != "volt nightly" {
		t.Fatalf("Pretty() = %q", got)
	}
}

func TestPrettyKeepsPrereleaseSuffix(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { Version, color.NoColor = origVersion, origNoColor }()

	Version = "0.1.0-dev"
	got := Pretty()
	if !strings.HasSuffix(got, "-dev") {
		t.Fatalf("Pretty() = %q, want -dev suffix", got)
	}
	if !strings.Contains(got, "0.1.0") {
		t.Fatalf("Pretty() = %q, want plain semver when color is off", got)
	}
}
