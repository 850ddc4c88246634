package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "volt.toml"), `
[package]
name = "demo"

[source]
roots = ["src", "lib"]

[diagnostics]
max = 50

[build]
jobs = 4
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, found, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("expected manifest to be found from nested dir")
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("package name = %q", m.Config.Package.Name)
	}
	if len(m.Config.Source.Roots) != 2 || m.Config.Source.Roots[0] != "src" {
		t.Errorf("roots = %v", m.Config.Source.Roots)
	}
	if m.Config.Diagnostics.Max != 50 {
		t.Errorf("diagnostics.max = %d", m.Config.Diagnostics.Max)
	}
	if m.Config.Build.Jobs != 4 {
		t.Errorf("build.jobs = %d", m.Config.Build.Jobs)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadWithoutManifestUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	m, found, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("no manifest should be found in an empty temp dir")
	}
	if len(m.Config.Source.Roots) != 1 || m.Config.Source.Roots[0] != "." {
		t.Errorf("default roots = %v", m.Config.Source.Roots)
	}
	if m.Config.Diagnostics.Max != 0 {
		t.Errorf("default max = %d", m.Config.Diagnostics.Max)
	}
}

func TestLoadDefaultsSourceRoots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "volt.toml"), `
[package]
name = "demo"
`)
	m, _, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Config.Source.Roots) != 1 || m.Config.Source.Roots[0] != "src" {
		t.Errorf("roots = %v, want [src]", m.Config.Source.Roots)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "volt.toml"), `
[diagnostics]
max = -1
`)
	if _, _, err := Load(root); err == nil {
		t.Fatal("negative diagnostics.max must be rejected")
	}
}

func TestDiscoverSourcesSortedAndDeduped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "b.vt"), "class B {}\n")
	writeFile(t, filepath.Join(root, "src", "a.vt"), "class A {}\n")
	writeFile(t, filepath.Join(root, "src", "sub", "c.vt"), "class C {}\n")
	writeFile(t, filepath.Join(root, "src", ".hidden", "d.vt"), "class D {}\n")
	writeFile(t, filepath.Join(root, "src", "readme.md"), "not source\n")

	m := Default(root)
	m.Config.Source.Roots = []string{"src", "src"}
	files, err := m.DiscoverSources()
	if err != nil {
		t.Fatalf("DiscoverSources: %v", err)
	}
	want := []string{
		filepath.Join(root, "src", "a.vt"),
		filepath.Join(root, "src", "b.vt"),
		filepath.Join(root, "src", "sub", "c.vt"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverSourcesMissingRootIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "x.vt"), "class X {}\n")

	m := Default(root)
	m.Config.Source.Roots = []string{"src", "lib"}
	files, err := m.DiscoverSources()
	if err != nil {
		t.Fatalf("DiscoverSources: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("files = %v, want a single entry", files)
	}
}
