package sema

import (
	"fmt"
	"strings"
	"testing"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/parser"
	"volt/internal/source"
)

func run(t *testing.T, srcs ...string) (*Result, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	var files []*ast.File
	for i, src := range srcs {
		id := fs.AddVirtual(fmt.Sprintf("unit%d.vt", i+1), []byte(src))
		files = append(files, parser.ParseFile(fs.Get(id), rep))
	}
	for _, d := range bag.Items() {
		if d.Code.ID() == "SYNTAX" {
			t.Fatalf("fixture has a syntax error: %s", d.Message)
		}
	}
	res := Analyze(fs, files, rep)
	return res, bag.Items()
}

func codeIDs(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Code.ID()
	}
	return out
}

func wantCodes(t *testing.T, diags []diag.Diagnostic, want ...string) {
	t.Helper()
	got := codeIDs(diags)
	if len(got) != len(want) {
		t.Fatalf("diagnostics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("diagnostic %d = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func wantMessage(t *testing.T, diags []diag.Diagnostic, i int, msg string) {
	t.Helper()
	if i >= len(diags) {
		t.Fatalf("no diagnostic %d, have %d", i, len(diags))
	}
	if diags[i].Message != msg {
		t.Fatalf("message %d = %q, want %q", i, diags[i].Message, msg)
	}
}

func TestRedefinitionKeepsFirstAuthoritative(t *testing.T) {
	res, diags := run(t, `
class Pair { let x: Int32; }
class Pair { let y: Int32; }
`)
	wantCodes(t, diags, "SYM_REDEFINITION")
	wantMessage(t, diags, 0, "'Pair' is already defined")

	sym := res.Table.Resolve(res.Table.ModuleScope(), res.Table.Strings.Intern("Pair"))
	if !sym.IsValid() {
		t.Fatalf("first declaration no longer resolvable")
	}
	if res.Classes[sym] == nil {
		t.Fatalf("first declaration lost its class info")
	}
}

func TestRedefinitionAcrossUnits(t *testing.T) {
	_, diags := run(t,
		"class Entity {}\n",
		"class Entity {}\n",
	)
	wantCodes(t, diags, "SYM_REDEFINITION")
	if diags[0].Primary.File != 1 {
		t.Fatalf("anchored in file %d, want the second unit", diags[0].Primary.File)
	}
}

func TestSelfInheritanceCycle(t *testing.T) {
	_, diags := run(t, "class A extends A {}\n")
	wantCodes(t, diags, "INVALID_BASE")
	wantMessage(t, diags, 0, "'A' circularly extends itself")
}

func TestTwoNodeCycleReportsOnce(t *testing.T) {
	res, diags := run(t, `
class A extends B {}
class B extends A {}
`)
	wantCodes(t, diags, "INVALID_BASE")
	wantMessage(t, diags, 0, "'B' circularly extends itself")

	// The broken edge keeps ancestor walks finite: A still sees B.
	a := res.Table.Resolve(res.Table.ModuleScope(), res.Table.Strings.Intern("A"))
	if got := len(res.Classes[a].Ancestors); got != 1 {
		t.Fatalf("A has %d ancestors, want 1", got)
	}
}

func TestBaseCategoryRules(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"struct V {}\nclass C extends V {}\n", "a class cannot inherit from a struct"},
		{"class C {}\nstruct V extends C {}\n", "a struct cannot inherit from a class"},
		{"class C extends Int32 {}\n", "a class cannot inherit from a primitive type"},
		{"enum E { A }\nclass C extends E {}\n", "a class cannot inherit from an enum"},
		{"interface I {}\nclass C extends I {}\n", "a class cannot inherit from an interface"},
	}
	for _, tc := range cases {
		_, diags := run(t, tc.src)
		wantCodes(t, diags, "INVALID_BASE")
		wantMessage(t, diags, 0, tc.msg)
	}
}

func TestArityCheckedAtEveryUseSite(t *testing.T) {
	_, diags := run(t, `
class Pair<T, U> {}
class Holder extends Pair<Int32> {
	let p: Pair<Int32>;
	func get(x: Pair<Int32>) -> Pair<Int32> { return x; }
}
`)
	wantCodes(t, diags,
		"INVALID_TYPE_ARG_COUNT", "INVALID_TYPE_ARG_COUNT",
		"INVALID_TYPE_ARG_COUNT", "INVALID_TYPE_ARG_COUNT")
	for i := range diags {
		wantMessage(t, diags, i, "invalid number of type arguments, expected 2")
	}
}

func TestArityTooMany(t *testing.T) {
	_, diags := run(t, `
class Box<T> {}
let b: Box<Int32, Int32>;
`)
	wantCodes(t, diags, "INVALID_TYPE_ARG_COUNT")
	wantMessage(t, diags, 0, "invalid number of type arguments, expected 1")
}

func TestBoundSatisfaction(t *testing.T) {
	_, diags := run(t, `
interface Show {}
class Good implements Show {}
class Box<T: Show> {}
let ok: Box<Good>;
let bad: Box<Int32>;
`)
	wantCodes(t, diags, "UNSASTISFIED_BOUND")
	wantMessage(t, diags, 0, "type argument 'Int32' does not satisfy the bound 'Show'")
}

func TestBoundThroughBaseChain(t *testing.T) {
	_, diags := run(t, `
interface Show {}
class Base implements Show {}
class Derived extends Base {}
class Box<T: Show> {}
let d: Box<Derived>;
`)
	wantCodes(t, diags)
}

func TestVariancePositions(t *testing.T) {
	_, diags := run(t, `
class Channel<-T, +U, V> {
	func put(x: T) {}
	func get() -> T { return get(); }
	func give() -> U { return give(); }
	func take(x: U) {}
	func both(x: V) -> V { return x; }
}
`)
	wantCodes(t, diags, "INVALID_VARIANCE", "INVALID_VARIANCE")
	wantMessage(t, diags, 0, "contravariant type parameter 'T' used in covariant position")
	wantMessage(t, diags, 1, "covariant type parameter 'U' used in contravariant position")
}

func TestVarianceFlipsInsideFunctionType(t *testing.T) {
	// A covariant parameter inside the parameter list of a callback is a
	// doubly-flipped position, which is output again.
	_, diags := run(t, `
class Source<+T> {
	func each(f: (T) -> Bool) {}
}
`)
	wantCodes(t, diags)
}

func TestStructFunctionsMustBeStatic(t *testing.T) {
	_, diags := run(t, `
struct Vec2 {
	let x: Float;
	static func zero() -> Vec2 { return zero(); }
	func length() -> Float { return 0.0; }
}
`)
	wantCodes(t, diags, "NON_STATIC_STRUCT_FN")
	wantMessage(t, diags, 0, "struct functions must be static")
}

func TestPersistentReferenceFields(t *testing.T) {
	_, diags := run(t, `
class Save {
	persistent let name: String;
	persistent let count: Int32;
	persistent let tags: [String];
	persistent let values: [Int32; 4];
}
`)
	wantCodes(t, diags, "INVALID_PERSISTENT", "INVALID_PERSISTENT")
	wantMessage(t, diags, 0, "persistent fields cannot have the reference type 'String'")
	wantMessage(t, diags, 1, "persistent fields cannot have the reference type 'String'")
}

func TestMissingBodyAndUnexpectedNative(t *testing.T) {
	_, diags := run(t, `
class Scripted {
	native func host() -> Int32;
	func absent() -> Int32;
}
native class Host {
	native func fine() -> Int32;
}
interface Show {
	func describe() -> String
}
`)
	wantCodes(t, diags, "UNEXPECTED_NATIVE", "MISSING_BODY")
	wantMessage(t, diags, 0, "'host' is marked native but declared in a scripted type")
	wantMessage(t, diags, 1, "'absent' requires a body")
}

func TestFreeFunctionMissingBody(t *testing.T) {
	_, diags := run(t, `
func declared() -> Int32;
native func host() -> Int32;
`)
	wantCodes(t, diags, "MISSING_BODY")
	wantMessage(t, diags, 0, "'declared' requires a body")
}

func TestDuplicateMethod(t *testing.T) {
	_, diags := run(t, `
class Widget {
	func render(depth: Int32) {}
	func render(alpha: Float) {}
	func render(depth: Int32) {}
}
`)
	wantCodes(t, diags, "DUP_METHOD")
	wantMessage(t, diags, 0, "'render' is implemented multiple times")
}

func TestDuplicateSpecialization(t *testing.T) {
	_, diags := run(t, `
class Pair<T, U> {}
impl IntPair = Pair<Int32, Int32>
impl Mixed = Pair<Int32, String>
impl AlsoIntPair = Pair<Int32, Int32>
`)
	wantCodes(t, diags, "DUP_IMPL")
	wantMessage(t, diags, 0, "a specialization for 'Pair<Int32, Int32>' is already defined")
}

func TestSpecializationNameClash(t *testing.T) {
	_, diags := run(t, `
class Pair<T, U> {}
impl IntPair = Pair<Int32, Int32>
impl IntPair = Pair<Int32, String>
`)
	wantCodes(t, diags, "SYM_REDEFINITION")
}

func TestMissingImplementations(t *testing.T) {
	_, diags := run(t, `
interface Show {
	func describe() -> String
	func id() -> Int32
}
abstract class Base implements Show {
	func id() -> Int32 { return 0; }
}
class Incomplete extends Base {}
class Complete extends Base {
	func describe() -> String { return ""; }
}
`)
	wantCodes(t, diags, "MISSING_IMPL")
	wantMessage(t, diags, 0, "'Incomplete' is missing implementations for the following members")
	notes := diags[0].Notes
	if len(notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(notes))
	}
	if notes[0].Msg != "func describe() -> String" {
		t.Fatalf("note = %q", notes[0].Msg)
	}
}

func TestFinalOverride(t *testing.T) {
	_, diags := run(t, `
class Base {
	final func lock() {}
}
class Derived extends Base {
	func lock() {}
}
`)
	wantCodes(t, diags, "FINAL_FN_OVERRIDE")
	wantMessage(t, diags, 0, "'lock' is final and cannot be overridden")
}

func TestAnnotationContexts(t *testing.T) {
	_, diags := run(t, `
@layout("compact")
class Packed {}

@layout("compact")
func misplaced() {}

@customHostMarker
func tolerated() {}
`)
	wantCodes(t, diags, "INVALID_ANN_USE")
	wantMessage(t, diags, 0, "the '@layout' annotation is not allowed on functions")
}

func TestUnresolvedType(t *testing.T) {
	_, diags := run(t, "let x: Mystery;\n")
	wantCodes(t, diags, "UNRESOLVED_TYPE")
	wantMessage(t, diags, 0, "'Mystery' is not a known type")
}

func TestIndependentChecksAllSurface(t *testing.T) {
	// One declaration can violate several rules at once; every family
	// reports.
	_, diags := run(t, `
interface Show {
	func describe() -> String
}
class Broken extends Missing implements Show {
	native func host() -> Int32;
}
`)
	got := codeIDs(diags)
	want := []string{"UNRESOLVED_TYPE", "UNEXPECTED_NATIVE", "MISSING_IMPL"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("diagnostics = %v, want %v", got, want)
	}
}

func TestIdempotentReruns(t *testing.T) {
	const src = `
class Pair<T, U> {}
class Holder extends Pair<Int32> {
	persistent let name: String;
	func absent() -> Int32;
}
`
	render := func() string {
		fs := source.NewFileSet()
		bag := diag.NewBag(0)
		rep := diag.BagReporter{Bag: bag}
		id := fs.AddVirtual("unit.vt", []byte(src))
		file := parser.ParseFile(fs.Get(id), rep)
		Analyze(fs, []*ast.File{file}, rep)
		var b strings.Builder
		for _, d := range bag.Items() {
			fmt.Fprintf(&b, "%s %s %s\n", d.Code.ID(), d.Primary, d.Message)
		}
		return b.String()
	}
	first := render()
	for i := 0; i < 3; i++ {
		if again := render(); again != first {
			t.Fatalf("rerun %d diverged:\n%s\nvs\n%s", i, again, first)
		}
	}
}
