package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the extension of analyzable source files.
const SourceExt = ".vt"

// DiscoverSources walks the manifest's source roots and returns every .vt
// file, deduplicated and sorted by path. Determinism of the analysis run
// starts here: the returned order is the unit order the checker sees.
func (m *Manifest) DiscoverSources() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, root := range m.Config.Source.Roots {
		dir := root
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Root, dir)
		}
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat source root %q: %w", dir, err)
		}
		if !info.IsDir() {
			if strings.HasSuffix(dir, SourceExt) {
				addSource(seen, &out, dir)
			}
			continue
		}
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// Hidden directories are build artifacts or VCS metadata.
				if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, SourceExt) {
				addSource(seen, &out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk source root %q: %w", dir, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

func addSource(seen map[string]struct{}, out *[]string, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, ok := seen[abs]; ok {
		return
	}
	seen[abs] = struct{}{}
	*out = append(*out, abs)
}
