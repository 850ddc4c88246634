package symbols

import (
	"testing"

	"volt/internal/source"
)

func TestDeclareAndResolve(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("Entity")

	id, ok := tbl.Declare(tbl.ModuleScope(), Symbol{Name: name, Kind: KindClass})
	if !ok || !id.IsValid() {
		t.Fatalf("declare failed")
	}
	if got := tbl.Resolve(tbl.ModuleScope(), name); got != id {
		t.Fatalf("resolve = %d, want %d", got, id)
	}
}

func TestRedefinitionKeepsFirst(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("x")

	first, ok := tbl.Declare(tbl.ModuleScope(), Symbol{Name: name, Kind: KindField})
	if !ok {
		t.Fatalf("first declare failed")
	}
	second, ok := tbl.Declare(tbl.ModuleScope(), Symbol{Name: name, Kind: KindFunc})
	if ok {
		t.Fatalf("second declare must fail")
	}
	if second != first {
		t.Fatalf("redefinition returned %d, want authoritative %d", second, first)
	}
	if tbl.Get(first).Kind != KindField {
		t.Fatalf("first declaration was overwritten")
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("value")

	outer, _ := tbl.Declare(tbl.ModuleScope(), Symbol{Name: name, Kind: KindField})
	fnScope := tbl.NewScope(ScopeFunction, tbl.ModuleScope(), NoSymbolID, source.Span{})
	inner, ok := tbl.Declare(fnScope, Symbol{Name: name, Kind: KindLocal})
	if !ok {
		t.Fatalf("shadowing declare must succeed")
	}
	if got := tbl.Resolve(fnScope, name); got != inner {
		t.Fatalf("inner resolve = %d, want %d", got, inner)
	}
	if got := tbl.Resolve(tbl.ModuleScope(), name); got != outer {
		t.Fatalf("outer resolve = %d, want %d", got, outer)
	}
}

func TestResolveWalksOutward(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("T")

	clsScope := tbl.NewScope(ScopeClass, tbl.ModuleScope(), NoSymbolID, source.Span{})
	fnScope := tbl.NewScope(ScopeFunction, clsScope, NoSymbolID, source.Span{})
	blk := tbl.NewScope(ScopeBlock, fnScope, NoSymbolID, source.Span{})

	id, _ := tbl.Declare(clsScope, Symbol{Name: name, Kind: KindTypeParam})
	if got := tbl.Resolve(blk, name); got != id {
		t.Fatalf("resolve through nested scopes = %d, want %d", got, id)
	}
	if got := tbl.ResolveLocal(blk, name); got != NoSymbolID {
		t.Fatalf("ResolveLocal must not walk outward")
	}
}

func TestQualifiedName(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	clsName := tbl.Strings.Intern("Pair")

	cls, _ := tbl.Declare(tbl.ModuleScope(), Symbol{Name: clsName, Kind: KindClass})
	body := tbl.NewScope(ScopeClass, tbl.ModuleScope(), cls, source.Span{})
	tbl.Get(cls).OwnScope = body

	if got := tbl.QualifiedName(body, "swap"); got != "Pair.swap" {
		t.Fatalf("qualified name = %q", got)
	}
}
