package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"volt/internal/diag"
	"volt/internal/source"
)

// cacheSchema versions the on-disk entry layout. Bump it whenever a cached
// struct changes shape; mismatched entries are discarded, never migrated.
const cacheSchema = 2

// CacheDirName is the default cache location under the project root.
const CacheDirName = ".volt-cache"

type cachedNote struct {
	Path  string `msgpack:"path"`
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
	Msg   string `msgpack:"msg"`
}

type cachedDiagnostic struct {
	Code     uint16       `msgpack:"code"`
	Severity uint8        `msgpack:"sev"`
	Path     string       `msgpack:"path"`
	Start    uint32       `msgpack:"start"`
	End      uint32       `msgpack:"end"`
	Message  string       `msgpack:"msg"`
	Notes    []cachedNote `msgpack:"notes,omitempty"`
}

type cachedFile struct {
	Path  string `msgpack:"path"`
	Hash  string `msgpack:"hash"`
	Diags int    `msgpack:"diags"`
}

// cacheEntry is one analyzed input set: the per-file summaries plus the full
// diagnostic sequence in emission order.
type cacheEntry struct {
	Schema      int                `msgpack:"schema"`
	Key         string             `msgpack:"key"`
	Symbols     int                `msgpack:"symbols"`
	Files       []cachedFile       `msgpack:"files"`
	Diagnostics []cachedDiagnostic `msgpack:"diagnostics"`
}

// Cache is a directory of msgpack entries keyed by input-set content hash.
// All failures degrade to a miss; the cache is never load-bearing.
type Cache struct {
	dir string
}

func OpenCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, key+".mpack")
}

// Load returns the entry under key, or ok=false on miss, corruption or
// schema mismatch.
func (c *Cache) Load(key string) (*cacheEntry, bool) {
	if c == nil || c.dir == "" {
		return nil, false
	}
	// #nosec G304 -- the path is derived from a hex digest under our dir
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return nil, false
	}
	var entry cacheEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if entry.Schema != cacheSchema || entry.Key != key {
		return nil, false
	}
	return &entry, true
}

// Store writes entry under key via a temp file and atomic rename, so a
// concurrent reader never observes a torn entry.
func (c *Cache) Store(key string, entry *cacheEntry) error {
	if c == nil || c.dir == "" {
		return nil
	}
	entry.Schema = cacheSchema
	entry.Key = key
	data, err := msgpack.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(c.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close cache temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.entryPath(key)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to commit cache entry: %w", err)
	}
	return nil
}

// inputSetKey hashes the ordered file contents plus the diagnostic cap into
// the cache key: H(hash_1 || hash_2 || ... || cap). Order sensitivity is
// deliberate, the unit order is part of the analysis input; the cap is part
// of the key because it truncates the stored sequence.
func inputSetKey(fs *source.FileSet, ids []source.FileID, maxDiags int) string {
	h := sha256.New()
	for _, id := range ids {
		fileHash := fs.Get(id).Hash
		_, _ = h.Write(fileHash[:])
	}
	_, _ = fmt.Fprintf(h, "max=%d", maxDiags)
	return hex.EncodeToString(h.Sum(nil))
}

// encodeDiagnostics flattens the bag into cacheable records. Spans become
// path plus byte offsets, which survive FileID reassignment across runs.
func encodeDiagnostics(fs *source.FileSet, diags []diag.Diagnostic) []cachedDiagnostic {
	out := make([]cachedDiagnostic, 0, len(diags))
	for _, d := range diags {
		cd := cachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Path:     fs.Get(d.Primary.File).Path,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{
				Path:  fs.Get(n.Span.File).Path,
				Start: n.Span.Start,
				End:   n.Span.End,
				Msg:   n.Msg,
			})
		}
		out = append(out, cd)
	}
	return out
}

// decodeDiagnostics rebuilds diagnostics against the current FileSet.
// A record naming an unknown path marks the entry stale; ok=false tells the
// caller to fall through to a fresh run.
func decodeDiagnostics(fs *source.FileSet, records []cachedDiagnostic) ([]diag.Diagnostic, bool) {
	out := make([]diag.Diagnostic, 0, len(records))
	for _, r := range records {
		id, found := fs.GetLatest(r.Path)
		if !found {
			return nil, false
		}
		d := diag.Diagnostic{
			Severity: diag.Severity(r.Severity),
			Code:     diag.Code(r.Code),
			Message:  r.Message,
			Primary:  source.Span{File: id, Start: r.Start, End: r.End},
		}
		for _, n := range r.Notes {
			nid, found := fs.GetLatest(n.Path)
			if !found {
				return nil, false
			}
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: nid, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		out = append(out, d)
	}
	return out, true
}
