package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()

	a := fs.AddVirtual("a.vt", []byte("class A {}\n"))
	b := fs.AddVirtual("b.vt", []byte("class B {}\n"))

	if a == b {
		t.Fatalf("expected distinct file IDs, got %d and %d", a, b)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if got := fs.Get(a).Path; got != "a.vt" {
		t.Errorf("expected path a.vt, got %q", got)
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	content := []byte("class A {}\n\nfunc main() -> Void {\n    return;\n}\n")
	id := fs.AddVirtual("main.vt", content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"first byte", 0, LineCol{Line: 1, Col: 1}},
		{"end of first line", 9, LineCol{Line: 1, Col: 10}},
		{"newline byte", 10, LineCol{Line: 1, Col: 11}},
		{"empty line", 11, LineCol{Line: 2, Col: 1}},
		{"func keyword", 12, LineCol{Line: 3, Col: 1}},
		{"indented return", 38, LineCol{Line: 4, Col: 5}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("%s: offset %d resolved to %+v, want %+v", tt.name, tt.off, got, tt.want)
		}
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("u.vt", []byte("α\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("expected end 1:2, got %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("g.vt", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("same.vt", []byte("version 1"), 0)
	id2 := fs.Add("same.vt", []byte("version 2"), 0)
	if id1 == id2 {
		t.Fatal("expected a fresh FileID for the second Add")
	}

	latest, ok := fs.GetLatest("same.vt")
	if !ok {
		t.Fatal("expected file to be indexed")
	}
	if latest != id2 {
		t.Errorf("expected latest id %d, got %d", id2, latest)
	}
	if f, ok := fs.GetByPath("same.vt"); !ok || string(f.Content) != "version 2" {
		t.Errorf("expected latest content, got %q", f.Content)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.vt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let x: Int32;\r\nlet y: Int32;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if want := "let x: Int32;\nlet y: Int32;\n"; string(f.Content) != want {
		t.Errorf("normalized content = %q, want %q", f.Content, want)
	}
}

func TestHashDistinguishesContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.vt", []byte("class A {}"))
	b := fs.AddVirtual("b.vt", []byte("class B {}"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Error("expected different hashes for different content")
	}
}
