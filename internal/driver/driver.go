// Package driver orchestrates an analysis run: source discovery, parallel
// parsing, semantic analysis and the disk cache. The CLI and tests both go
// through Run so they observe identical behavior.
package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/observ"
	"volt/internal/parser"
	"volt/internal/project"
	"volt/internal/sema"
	"volt/internal/source"
	"volt/prelude"
)

// Progress receives per-file parse notifications. Implementations must be
// safe for calls from multiple goroutines.
type Progress interface {
	Start(total int)
	Advance(label string)
	Done()
}

// Options configure one Run.
type Options struct {
	// Jobs bounds parse parallelism; zero means one worker per CPU.
	Jobs int
	// MaxDiagnostics caps the collected diagnostics; zero means unlimited.
	MaxDiagnostics int
	// NoCache disables both cache lookup and cache write.
	NoCache bool
	// CacheDir overrides the default <root>/.volt-cache location.
	CacheDir string
	// Progress, when non-nil, is notified as files finish parsing.
	Progress Progress
}

// Result is the outcome of one Run.
type Result struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	// Sema is nil when the run was served from the cache.
	Sema      *sema.Result
	FromCache bool
	Timer     *observ.Timer
}

// Run analyzes the manifest's sources, or the explicit paths when given.
// Analysis failures surface as diagnostics in the returned bag; the error
// return covers I/O and configuration problems only.
func Run(ctx context.Context, m *project.Manifest, paths []string, opts Options) (*Result, error) {
	timer := observ.NewTimer()

	files, err := resolveInputs(m, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found under %s", project.SourceExt, m.Root)
	}

	// The prelude loads ahead of user units so host declarations resolve in
	// every script.
	loadPhase := timer.Begin("load")
	fs := source.NewFileSetWithBase(m.Root)
	ids := make([]source.FileID, 0, len(files)+1)
	ids = append(ids, fs.AddVirtual(prelude.FileName, prelude.Source()))
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		ids = append(ids, id)
	}
	timer.End(loadPhase, fmt.Sprintf("%d files", len(ids)))

	max := opts.MaxDiagnostics
	if max == 0 && m.Config.Diagnostics.Max > 0 {
		max = m.Config.Diagnostics.Max
	}
	bag := diag.NewBag(max)

	var cache *Cache
	key := inputSetKey(fs, ids, max)
	if !opts.NoCache {
		dir := opts.CacheDir
		if dir == "" {
			dir = defaultCacheDir(m)
		}
		cache = OpenCache(dir)
		if entry, ok := cache.Load(key); ok {
			if diags, ok := decodeDiagnostics(fs, entry.Diagnostics); ok {
				for _, d := range diags {
					bag.Add(d)
				}
				return &Result{FileSet: fs, Bag: bag, FromCache: true, Timer: timer}, nil
			}
		}
	}

	units, err := parseAll(ctx, fs, ids, opts, timer, bag)
	if err != nil {
		return nil, err
	}

	analyzePhase := timer.Begin("analyze")
	res := sema.Analyze(fs, units, diag.BagReporter{Bag: bag})
	timer.End(analyzePhase, fmt.Sprintf("%d diagnostics", bag.Len()))

	if cache != nil {
		entry := &cacheEntry{
			Symbols:     res.Table.Symbols.Len(),
			Diagnostics: encodeDiagnostics(fs, bag.Items()),
		}
		for _, id := range ids {
			f := fs.Get(id)
			n := 0
			for _, d := range bag.Items() {
				if d.Primary.File == id {
					n++
				}
			}
			entry.Files = append(entry.Files, cachedFile{
				Path:  f.Path,
				Hash:  fmt.Sprintf("%x", f.Hash),
				Diags: n,
			})
		}
		cachePhase := timer.Begin("cache")
		err := cache.Store(key, entry)
		timer.End(cachePhase, "")
		if err != nil {
			// A failed write only costs the next run a recompute.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	return &Result{FileSet: fs, Bag: bag, Sema: res, Timer: timer}, nil
}

// parseAll parses every unit, fanning files out across workers. Each worker
// collects into its own bag; merging happens in unit order afterwards so the
// diagnostic sequence does not depend on scheduling.
func parseAll(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts Options, timer *observ.Timer, bag *diag.Bag) ([]*ast.File, error) {
	phase := timer.Begin("parse")
	defer func() { timer.End(phase, fmt.Sprintf("%d units", len(ids))) }()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if opts.Progress != nil {
		opts.Progress.Start(len(ids))
		defer opts.Progress.Done()
	}
	var progressMu sync.Mutex
	advance := func(label string) {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		opts.Progress.Advance(label)
		progressMu.Unlock()
	}

	units := make([]*ast.File, len(ids))
	bags := make([]*diag.Bag, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fileBag := diag.NewBag(0)
			units[i] = parser.ParseFile(fs.Get(id), diag.BagReporter{Bag: fileBag})
			bags[i] = fileBag
			advance(fs.Get(id).Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, fileBag := range bags {
		for _, d := range fileBag.Items() {
			bag.Add(d)
		}
	}
	return units, nil
}

// resolveInputs expands the CLI's path arguments, falling back to the
// manifest's source roots when none are given. Directory arguments are
// walked the same way manifest roots are.
func resolveInputs(m *project.Manifest, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return m.DiscoverSources()
	}
	scoped := *m
	scoped.Config.Source.Roots = paths
	return scoped.DiscoverSources()
}

func defaultCacheDir(m *project.Manifest) string {
	return filepath.Join(m.Root, CacheDirName)
}
