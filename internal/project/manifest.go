// Package project locates and parses volt.toml and enumerates the source
// files an analysis run covers.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the walk-up search looks for.
const ManifestName = "volt.toml"

// Config mirrors the volt.toml schema. Absent sections keep their defaults.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Source      SourceConfig      `toml:"source"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Build       BuildConfig       `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type SourceConfig struct {
	// Roots lists directories searched for .vt files, relative to the
	// manifest directory.
	Roots []string `toml:"roots"`
}

type DiagnosticsConfig struct {
	// Max caps the number of rendered diagnostics. Zero means unlimited.
	Max int `toml:"max"`
}

type BuildConfig struct {
	// Jobs bounds parse parallelism. Zero means one worker per CPU.
	Jobs int `toml:"jobs"`
}

// Manifest is a parsed volt.toml together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no manifest exists: sources
// under the working directory itself, no diagnostic cap.
func Default(root string) *Manifest {
	return &Manifest{
		Root: root,
		Config: Config{
			Source: SourceConfig{Roots: []string{"."}},
		},
	}
}

// FindManifest walks up from startDir to locate volt.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir, parses the nearest volt.toml and returns it.
// When none exists it returns Default(startDir) with found=false.
func Load(startDir string) (m *Manifest, found bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		abs, err := filepath.Abs(startDir)
		if err != nil {
			return nil, false, err
		}
		return Default(abs), false, nil
	}
	cfg, err := parseConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func parseConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("package", "name") && strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: [package].name must not be empty", path)
	}
	if !meta.IsDefined("source", "roots") || len(cfg.Source.Roots) == 0 {
		cfg.Source.Roots = []string{"src"}
	}
	if cfg.Diagnostics.Max < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	if cfg.Build.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	return cfg, nil
}
