package source

import "testing"

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()

	a := in.Intern("Entity")
	b := in.Intern("Vec2")
	again := in.Intern("Entity")

	if a == b {
		t.Fatal("distinct strings must get distinct IDs")
	}
	if a != again {
		t.Fatalf("re-interning must be stable: %d vs %d", a, again)
	}
	if got := in.MustLookup(a); got != "Entity" {
		t.Errorf("lookup = %q, want Entity", got)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string must map to NoStringID, got %d", id)
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must resolve to the empty string")
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner length = %d, want 1", in.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	in := NewInterner()
	buf := []byte("scratch")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if got := in.MustLookup(id); got != "scratch" {
		t.Errorf("interner must not alias caller buffers, got %q", got)
	}
}

func TestInternerUnknownID(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Error("lookup of an unissued ID must fail")
	}
}

func TestInternerSnapshot(t *testing.T) {
	in := NewInterner()
	in.Intern("one")
	in.Intern("two")
	snap := in.Snapshot()
	if len(snap) != 3 || snap[1] != "one" || snap[2] != "two" {
		t.Errorf("unexpected snapshot %v", snap)
	}
}
