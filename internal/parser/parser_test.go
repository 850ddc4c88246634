package parser

import (
	"testing"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
)

func parse(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vt", []byte(src))
	bag := diag.NewBag(0)
	file := ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})
	return file, bag
}

func parseClean(t *testing.T, src string) *ast.File {
	t.Helper()
	file, bag := parse(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	return file
}

func TestModuleHeader(t *testing.T) {
	file := parseClean(t, "module game.core.entities\nclass A {}")
	if file.Module == nil || file.Module.Name() != "game.core.entities" {
		t.Fatalf("module = %+v", file.Module)
	}
	if len(file.Items) != 1 {
		t.Fatalf("items = %d", len(file.Items))
	}
}

func TestClassWithGenericsAndClauses(t *testing.T) {
	file := parseClean(t, `
class Pair<T, +U, -V: Base + Show> extends Container<T> implements Show, Ord {
    let first: T;
    func swap() -> Pair<U, T>;
}`)
	cls, ok := file.Items[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("item is %T", file.Items[0])
	}
	if cls.Name != "Pair" || cls.Kind != ast.KindClass {
		t.Fatalf("decl = %+v", cls)
	}
	if len(cls.TypeParams) != 3 {
		t.Fatalf("type params = %d", len(cls.TypeParams))
	}
	if cls.TypeParams[0].Variance != ast.Invariant ||
		cls.TypeParams[1].Variance != ast.Covariant ||
		cls.TypeParams[2].Variance != ast.Contravariant {
		t.Errorf("variances wrong: %+v", cls.TypeParams)
	}
	if len(cls.TypeParams[2].Bounds) != 2 {
		t.Errorf("bounds = %d", len(cls.TypeParams[2].Bounds))
	}
	if cls.Base == nil || cls.Base.Name != "Container" || len(cls.Base.Args) != 1 {
		t.Errorf("base = %+v", cls.Base)
	}
	if len(cls.Implements) != 2 {
		t.Errorf("implements = %d", len(cls.Implements))
	}
	if len(cls.Members) != 2 {
		t.Fatalf("members = %d", len(cls.Members))
	}
	if fn, ok := cls.Members[1].(*ast.FuncDecl); !ok || fn.Body != nil {
		t.Errorf("expected bodyless method, got %+v", cls.Members[1])
	}
}

func TestQualifiersAndAnnotations(t *testing.T) {
	file := parseClean(t, `
@layout("compact")
native abstract class Entity {
    persistent let id: Uint64;
    static func make() -> Entity { return null; }
}`)
	cls := file.Items[0].(*ast.ClassDecl)
	if !cls.Quals.Has(ast.QualNative) || !cls.Quals.Has(ast.QualAbstract) {
		t.Errorf("quals = %v", cls.Quals)
	}
	if len(cls.Annotations) != 1 || cls.Annotations[0].Name != "layout" {
		t.Errorf("annotations = %+v", cls.Annotations)
	}
	field := cls.Members[0].(*ast.FieldDecl)
	if !field.Quals.Has(ast.QualPersistent) {
		t.Errorf("field quals = %v", field.Quals)
	}
	fn := cls.Members[1].(*ast.FuncDecl)
	if !fn.Quals.Has(ast.QualStatic) || fn.Body == nil {
		t.Errorf("method = %+v", fn)
	}
}

func TestEnumDecl(t *testing.T) {
	file := parseClean(t, "enum Color { Red = 0, Green, Blue }")
	e := file.Items[0].(*ast.EnumDecl)
	if len(e.Variants) != 3 {
		t.Fatalf("variants = %d", len(e.Variants))
	}
	if !e.Variants[0].HasValue || e.Variants[0].Value != 0 {
		t.Errorf("variant 0 = %+v", e.Variants[0])
	}
	if e.Variants[1].HasValue {
		t.Errorf("variant 1 should have no explicit value")
	}
}

func TestImplDecl(t *testing.T) {
	file := parseClean(t, "impl IntPair = Pair<Int32, Int32>;")
	impl := file.Items[0].(*ast.ImplDecl)
	if impl.Name != "IntPair" || impl.Target == nil || len(impl.Target.Args) != 2 {
		t.Fatalf("impl = %+v", impl)
	}
}

func TestImplDeclSemicolonIsOptional(t *testing.T) {
	file := parseClean(t, `
impl IntPair = Pair<Int32, Int32>
impl Mixed = Pair<Int32, String>
class After {}`)
	if len(file.Items) != 3 {
		t.Fatalf("items = %d", len(file.Items))
	}
	for i, name := range []string{"IntPair", "Mixed"} {
		impl, ok := file.Items[i].(*ast.ImplDecl)
		if !ok {
			t.Fatalf("item %d is %T", i, file.Items[i])
		}
		if impl.Name != name || impl.Target == nil {
			t.Errorf("item %d = %+v", i, impl)
		}
	}
	if _, ok := file.Items[2].(*ast.ClassDecl); !ok {
		t.Errorf("item 2 is %T", file.Items[2])
	}
}

func TestTypeForms(t *testing.T) {
	file := parseClean(t, `
let a: [Int32];
let b: [Int32; 4];
let c: (Int32, String) -> Bool;
`)
	arr := file.Items[0].(*ast.FieldDecl).Type.(*ast.ArrayType)
	if arr.HasLen {
		t.Errorf("dynamic array has length")
	}
	fixed := file.Items[1].(*ast.FieldDecl).Type.(*ast.ArrayType)
	if !fixed.HasLen || fixed.Len != 4 {
		t.Errorf("static array = %+v", fixed)
	}
	fn := file.Items[2].(*ast.FieldDecl).Type.(*ast.FuncType)
	if len(fn.Params) != 2 || fn.Return == nil {
		t.Errorf("func type = %+v", fn)
	}
}

func TestSwitchArms(t *testing.T) {
	file := parseClean(t, `
func pick(items: [Int32]) -> Int32 {
    switch items {
        case [a, b, ..] if a > b: return a;
        case [.., x]: return x;
        case Vec2{x, y: yy}: return yy;
        case 5: return 5;
        case _: return 0;
        default: return -1;
    }
}`)
	fn := file.Items[0].(*ast.FuncDecl)
	sw := fn.Body.Stmts[0].(*ast.SwitchStmt)
	if len(sw.Arms) != 6 {
		t.Fatalf("arms = %d", len(sw.Arms))
	}
	arm0 := sw.Arms[0]
	ap := arm0.Pattern.(*ast.ArrayPattern)
	if len(ap.Prefix) != 2 || !ap.HasRest || len(ap.Suffix) != 0 {
		t.Errorf("arm 0 pattern = %+v", ap)
	}
	if arm0.Guard == nil {
		t.Errorf("arm 0 guard missing")
	}
	ap1 := sw.Arms[1].Pattern.(*ast.ArrayPattern)
	if len(ap1.Prefix) != 0 || !ap1.HasRest || len(ap1.Suffix) != 1 {
		t.Errorf("arm 1 pattern = %+v", ap1)
	}
	fp := sw.Arms[2].Pattern.(*ast.FieldPattern)
	if fp.TypeName != "Vec2" || len(fp.Fields) != 2 {
		t.Errorf("arm 2 pattern = %+v", fp)
	}
	if fp.Fields[0].Sub != nil || fp.Fields[1].Sub == nil {
		t.Errorf("field subpatterns wrong")
	}
	if _, ok := sw.Arms[3].Pattern.(*ast.LiteralPattern); !ok {
		t.Errorf("arm 3 pattern = %T", sw.Arms[3].Pattern)
	}
	if !sw.Arms[5].IsDefault {
		t.Errorf("arm 5 should be default")
	}
}

func TestRestBetweenPrefixAndSuffix(t *testing.T) {
	file := parseClean(t, `
func f(items: [Int32]) {
    if let [a, .., b] = items { }
}`)
	fn := file.Items[0].(*ast.FuncDecl)
	iflet := fn.Body.Stmts[0].(*ast.IfLetStmt)
	ap := iflet.Pattern.(*ast.ArrayPattern)
	if len(ap.Prefix) != 1 || len(ap.Suffix) != 1 || !ap.HasRest {
		t.Fatalf("pattern = %+v", ap)
	}
}

func TestDuplicateRestReported(t *testing.T) {
	_, bag := parse(t, `
func f(items: [Int32]) {
    if let [a, .., b, ..] = items { }
}`)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynDuplicateRest {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynDuplicateRest, got %+v", bag.Items())
	}
}

func TestExpressionPrecedence(t *testing.T) {
	file := parseClean(t, "func f() { let x: Int32 = 1 + 2 * 3; }")
	fn := file.Items[0].(*ast.FuncDecl)
	let := fn.Body.Stmts[0].(*ast.LetStmt)
	add := let.Init.(*ast.BinaryExpr)
	if _, ok := add.X.(*ast.LiteralExpr); !ok {
		t.Errorf("lhs = %T", add.X)
	}
	if mul, ok := add.Y.(*ast.BinaryExpr); !ok {
		t.Errorf("rhs = %T", add.Y)
	} else if mul.Op.String() != "*" {
		t.Errorf("rhs op = %v", mul.Op)
	}
}

func TestRecoveryAtDeclBoundary(t *testing.T) {
	file, bag := parse(t, `
class Good1 {}
class {}
class Good2 {}`)
	if bag.Len() == 0 {
		t.Fatalf("expected a syntax error")
	}
	var names []string
	for _, it := range file.Items {
		names = append(names, ast.ItemName(it))
	}
	if len(names) != 2 || names[0] != "Good1" || names[1] != "Good2" {
		t.Fatalf("recovered items = %v", names)
	}
}

func TestBodyStatements(t *testing.T) {
	parseClean(t, `
func loop(items: [Int32]) -> Int32 {
    let total: Int32 = 0;
    for item in items {
        if item > 0 {
            total = total + item;
        } else if item == 0 {
            continue;
        } else {
            break;
        }
    }
    while total > 100 {
        total = total - 1;
    }
    return total;
}`)
}

func TestNewAndCalls(t *testing.T) {
	file := parseClean(t, `func f() { let e: Entity = new Entity(1, "x"); e.describe()[0](true); }`)
	fn := file.Items[0].(*ast.FuncDecl)
	let := fn.Body.Stmts[0].(*ast.LetStmt)
	ne := let.Init.(*ast.NewExpr)
	if ne.Type.Name != "Entity" || len(ne.Args) != 2 {
		t.Fatalf("new = %+v", ne)
	}
}
