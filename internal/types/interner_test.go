package types

import (
	"testing"

	"volt/internal/symbols"
)

func TestStructuralInterning(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	a1 := in.Intern(MakeArray(b.Int32))
	a2 := in.Intern(MakeArray(b.Int32))
	if a1 != a2 {
		t.Fatalf("structurally equal arrays interned to %d and %d", a1, a2)
	}
	a3 := in.Intern(MakeArray(b.Int64))
	if a3 == a1 {
		t.Fatalf("different element types share a TypeID")
	}
}

func TestNominalIdentityBySymbol(t *testing.T) {
	in := NewInterner()

	// Same name text, different declaring symbols: distinct types.
	pairA := in.Intern(MakeNominal(symbols.SymbolID(1), nil))
	pairB := in.Intern(MakeNominal(symbols.SymbolID(2), nil))
	if pairA == pairB {
		t.Fatalf("distinct symbols interned to the same type")
	}
	again := in.Intern(MakeNominal(symbols.SymbolID(1), nil))
	if again != pairA {
		t.Fatalf("same symbol interned twice")
	}
}

func TestGenericArgumentsDistinguish(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	sym := symbols.SymbolID(7)

	intPair := in.Intern(MakeNominal(sym, []TypeID{b.Int32, b.Int32}))
	mixed := in.Intern(MakeNominal(sym, []TypeID{b.Int32, b.String}))
	if intPair == mixed {
		t.Fatalf("different type arguments share a TypeID")
	}
}

func TestFuncSignatures(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	f1 := in.Intern(MakeFunc([]TypeID{b.Int32, b.String}, b.Bool))
	f2 := in.Intern(MakeFunc([]TypeID{b.Int32, b.String}, b.Bool))
	f3 := in.Intern(MakeFunc([]TypeID{b.String, b.Int32}, b.Bool))
	if f1 != f2 {
		t.Fatalf("equal signatures differ")
	}
	if f1 == f3 {
		t.Fatalf("parameter order ignored")
	}
}

func TestReferenceCategory(t *testing.T) {
	refs := []Primitive{PrimString, PrimResRef, PrimVariant}
	for _, p := range refs {
		if !p.IsReferenceCategory() {
			t.Errorf("%v should be reference-category", p)
		}
	}
	values := []Primitive{PrimBool, PrimInt32, PrimUint64, PrimFloat, PrimDouble, PrimCName}
	for _, p := range values {
		if p.IsReferenceCategory() {
			t.Errorf("%v should be value-category", p)
		}
	}
}

func TestLabels(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tbl := symbols.NewTable(symbols.Hints{}, nil)
	sym, _ := tbl.Declare(tbl.ModuleScope(), symbols.Symbol{
		Name: tbl.Strings.Intern("Pair"),
		Kind: symbols.KindClass,
	})

	pair := in.Intern(MakeNominal(sym, []TypeID{b.Int32, b.String}))
	if got := in.Label(pair, tbl); got != "Pair<Int32, String>" {
		t.Errorf("label = %q", got)
	}
	arr := in.Intern(MakeStaticArray(b.Int32, 4))
	if got := in.Label(arr, tbl); got != "[Int32; 4]" {
		t.Errorf("label = %q", got)
	}
	fn := in.Intern(MakeFunc([]TypeID{b.Int32}, b.Bool))
	if got := in.Label(fn, tbl); got != "(Int32) -> Bool" {
		t.Errorf("label = %q", got)
	}
	if got := in.Label(b.Error, tbl); got != "<error>" {
		t.Errorf("error label = %q", got)
	}
}
