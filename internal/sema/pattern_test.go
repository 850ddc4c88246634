package sema

import (
	"testing"

	"volt/internal/symbols"
)

func funcMatches(t *testing.T, res *Result, name string) []*Match {
	t.Helper()
	sym := res.Table.Resolve(res.Table.ModuleScope(), res.Table.Strings.Intern(name))
	if !sym.IsValid() {
		t.Fatalf("function %q not declared", name)
	}
	matches := res.Matches[sym]
	if len(matches) == 0 {
		t.Fatalf("function %q produced no lowered matches", name)
	}
	return matches
}

func bindingNamed(t *testing.T, arm Arm, name string) Binding {
	t.Helper()
	for _, b := range arm.Bindings {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("arm has no binding %q (have %v)", name, arm.Bindings)
	return Binding{}
}

func TestSuffixRestIndexMath(t *testing.T) {
	res, diags := run(t, `
func pick(items: [Int32]) -> Int32 {
	switch items {
		case [.., a, b, c]: return a;
		case [x, y, ..]: return x;
		default: return 0;
	}
}
`)
	wantCodes(t, diags)

	m := funcMatches(t, res, "pick")[0]
	if !m.HasFallback {
		t.Fatalf("explicit default arm not marked as fallback")
	}
	if len(m.Arms) != 3 {
		t.Fatalf("arms = %d, want 3", len(m.Arms))
	}

	// [.., a, b, c] against length 3 binds slots 0,1,2; against length 5
	// slots 2,3,4.
	suffix := m.Arms[0]
	for i, name := range []string{"a", "b", "c"} {
		b := bindingNamed(t, suffix, name)
		if !b.IsElem || !b.FromEnd {
			t.Fatalf("binding %q = %+v, want a from-end element", name, b)
		}
		if got := b.ElementIndex(3); got != i {
			t.Errorf("%q.ElementIndex(3) = %d, want %d", name, got, i)
		}
		if got := b.ElementIndex(5); got != i+2 {
			t.Errorf("%q.ElementIndex(5) = %d, want %d", name, got, i+2)
		}
	}

	prefix := m.Arms[1]
	for i, name := range []string{"x", "y"} {
		b := bindingNamed(t, prefix, name)
		if !b.IsElem || b.FromEnd {
			t.Fatalf("binding %q = %+v, want a from-front element", name, b)
		}
		if got := b.ElementIndex(3); got != i {
			t.Errorf("%q.ElementIndex(3) = %d, want %d", name, got, i)
		}
	}

	// Element bindings carry the element type.
	b32 := res.Types.Builtins().Int32
	if b := bindingNamed(t, suffix, "a"); b.Type != b32 {
		t.Errorf("binding type = %s", res.Types.Label(b.Type, res.Table))
	}
}

func TestRestBetweenEndsBindsBothSides(t *testing.T) {
	res, diags := run(t, `
func ends(items: [Int32]) -> Int32 {
	switch items {
		case [a, .., b]: return a;
		default: return 0;
	}
}
`)
	wantCodes(t, diags)

	arm := funcMatches(t, res, "ends")[0].Arms[0]
	a := bindingNamed(t, arm, "a")
	if !a.IsElem || a.FromEnd || a.Index != 0 {
		t.Fatalf("a binding = %+v, want front element 0", a)
	}
	b := bindingNamed(t, arm, "b")
	if !b.IsElem || !b.FromEnd {
		t.Fatalf("b binding = %+v, want a from-end element", b)
	}
	if got := b.ElementIndex(2); got != 1 {
		t.Errorf("b.ElementIndex(2) = %d, want 1", got)
	}
	if got := b.ElementIndex(5); got != 4 {
		t.Errorf("b.ElementIndex(5) = %d, want 4", got)
	}
}

func TestIfLetLowersWithImplicitFallback(t *testing.T) {
	res, diags := run(t, `
func first(items: [Int32]) -> Int32 {
	if let [head, ..] = items {
		return head;
	}
	return 0;
}
`)
	wantCodes(t, diags)

	m := funcMatches(t, res, "first")[0]
	if !m.HasFallback {
		t.Fatalf("if-let must carry the implicit no-match fallback")
	}
	if len(m.Arms) != 1 {
		t.Fatalf("arms = %d, want 1", len(m.Arms))
	}
	head := bindingNamed(t, m.Arms[0], "head")
	if !head.IsElem || head.FromEnd || head.Index != 0 {
		t.Fatalf("head binding = %+v", head)
	}
}

func TestFieldPatternBindsDeclaredTypes(t *testing.T) {
	res, diags := run(t, `
struct Vec2 {
	let x: Float;
	let y: Float;
}
func axis(v: Vec2) -> Float {
	switch v {
		case Vec2{x, y: vertical}: return vertical;
		default: return 0.0;
	}
}
`)
	wantCodes(t, diags)

	m := funcMatches(t, res, "axis")[0]
	float := res.Types.Builtins().Float
	x := bindingNamed(t, m.Arms[0], "x")
	if x.Field != "x" || x.Type != float {
		t.Fatalf("x binding = %+v", x)
	}
	vertical := bindingNamed(t, m.Arms[0], "vertical")
	if vertical.Field != "y" || vertical.Type != float {
		t.Fatalf("vertical binding = %+v", vertical)
	}
}

func TestFieldPatternSubstitutesTypeArguments(t *testing.T) {
	res, diags := run(t, `
class Box<T> {
	let item: T;
}
func unwrap(b: Box<Int32>) -> Int32 {
	if let Box{item} = b {
		return item;
	}
	return 0;
}
`)
	wantCodes(t, diags)

	m := funcMatches(t, res, "unwrap")[0]
	item := bindingNamed(t, m.Arms[0], "item")
	if item.Type != res.Types.Builtins().Int32 {
		t.Fatalf("item bound as %s, want Int32", res.Types.Label(item.Type, res.Table))
	}
}

func TestFieldPatternFindsInheritedFields(t *testing.T) {
	_, diags := run(t, `
class Base {
	let id: Int32;
}
class Derived extends Base {
	let name: String;
}
func f(d: Derived) {
	if let Derived{id, name} = d {
		return;
	}
}
`)
	wantCodes(t, diags)
}

func TestUnresolvedMember(t *testing.T) {
	_, diags := run(t, `
struct Vec2 {
	let x: Float;
	let y: Float;
}
func f(v: Vec2) {
	if let Vec2{z} = v {
		return;
	}
}
`)
	wantCodes(t, diags, "UNRESOLVED_MEMBER")
	wantMessage(t, diags, 0, "'Vec2' has no member named 'z'")
}

func TestPatternShapeMismatches(t *testing.T) {
	_, diags := run(t, `
func f(x: Int32) {
	switch x {
		case [a, ..]: return;
		case "text": return;
		case Missing{v}: return;
		default: return;
	}
}
`)
	wantCodes(t, diags, "TYPE_ERR", "TYPE_ERR", "UNRESOLVED_TYPE", "TYPE_ERR")
	wantMessage(t, diags, 0, "type mismatch: found Int32 when expected an array type")
	wantMessage(t, diags, 1, "type mismatch: found String when expected Int32")
	wantMessage(t, diags, 3, "type mismatch: found Int32 when expected a class or struct type")
}

func TestUnresolvedScrutineeAndGuard(t *testing.T) {
	_, diags := run(t, `
func f(items: [Int32]) {
	switch unknown {
		case [a, ..] if mystery: return;
		default: return;
	}
}
`)
	wantCodes(t, diags, "UNRESOLVED_REF", "UNRESOLVED_REF")
	wantMessage(t, diags, 0, "'unknown' is not defined")
	wantMessage(t, diags, 1, "'mystery' is not defined")
}

func TestGuardMustBeBool(t *testing.T) {
	_, diags := run(t, `
func f(items: [Int32], limit: Int32) {
	switch items {
		case [a, ..] if limit: return;
		default: return;
	}
}
`)
	wantCodes(t, diags, "TYPE_ERR")
	wantMessage(t, diags, 0, "type mismatch: found Int32 when expected Bool")
}

func TestBindingsAreArmScoped(t *testing.T) {
	res, diags := run(t, `
func f(items: [Int32]) -> Int32 {
	switch items {
		case [a, ..]: return a;
		case [.., a]: return a;
		default: return 0;
	}
}
`)
	// The same name in two arms is legal; the arms own separate scopes.
	wantCodes(t, diags)

	m := funcMatches(t, res, "f")[0]
	first := bindingNamed(t, m.Arms[0], "a")
	second := bindingNamed(t, m.Arms[1], "a")
	if first.Sym == second.Sym || first.Sym == symbols.NoSymbolID {
		t.Fatalf("arm bindings share a symbol: %v vs %v", first.Sym, second.Sym)
	}
}

func TestEnumScrutinee(t *testing.T) {
	_, diags := run(t, `
enum Color { Red = 0, Green, Blue }
func f(c: Color) -> Int32 {
	switch c {
		case other: return 1;
		default: return 0;
	}
}
`)
	wantCodes(t, diags)
}
