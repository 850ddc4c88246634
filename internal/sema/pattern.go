package sema

import (
	"fmt"

	"fortio.org/safecast"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/symbols"
	"volt/internal/types"
)

// Match is the lowered decision structure for one switch statement or if-let
// binding: arms in source order, first match wins, bindings scoped to the
// winning arm's body.
type Match struct {
	Span      source.Span
	Scrutinee types.TypeID
	Arms      []Arm
	// HasFallback is set by an explicit default arm or by the implicit
	// no-match fallthrough of if-let.
	HasFallback bool
}

// Arm is one case of a Match. The default arm has a nil Pattern.
type Arm struct {
	Span      source.Span
	Pattern   ast.Pattern
	Guard     ast.Expr
	Bindings  []Binding
	Body      []ast.Stmt
	IsDefault bool
}

// Binding is one name captured by a pattern, with enough position
// information for the backend to emit the extraction.
type Binding struct {
	Sym  symbols.SymbolID
	Name string
	Type types.TypeID
	Span source.Span

	// Field names the destructured field for field-pattern bindings.
	Field string

	// Element slot for array-pattern bindings. Prefix elements store their
	// offset from the front; suffix elements store their offset measured
	// back from the sequence end, with FromEnd set.
	IsElem  bool
	FromEnd bool
	Index   uint32
}

// ElementIndex resolves the binding's slot against a concrete sequence
// length: `[.., a, b, c]` against length 5 yields 2, 3, 4.
func (b Binding) ElementIndex(length int) int {
	if !b.FromEnd {
		return int(b.Index)
	}
	return length - int(b.Index)
}

// checkPattern type-checks one pattern against the scrutinee type and
// collects the names it binds into the arm scope.
func (bc *bodyChecker) checkPattern(scope symbols.ScopeID, pat ast.Pattern, scrut types.TypeID) []Binding {
	var out []Binding
	bc.patternInto(scope, pat, scrut, &out)
	return out
}

func (bc *bodyChecker) patternInto(scope symbols.ScopeID, pat ast.Pattern, t types.TypeID, out *[]Binding) {
	c := bc.c
	switch p := pat.(type) {
	case *ast.WildcardPattern:

	case *ast.BindingPattern:
		*out = append(*out, bc.declareBinding(scope, p.Name, p.Span, t, Binding{}))

	case *ast.LiteralPattern:
		if !bc.literalCompatible(p.Lit.Kind, t) {
			c.errorf(diag.SemaTypeErr, p.Span,
				fmt.Sprintf("type mismatch: found %s when expected %s",
					bc.literalLabel(p.Lit.Kind), c.types.Label(t, c.table)))
		}

	case *ast.ArrayPattern:
		elem, ok := bc.elementType(t)
		if !ok {
			c.errorf(diag.SemaTypeErr, p.Span,
				fmt.Sprintf("type mismatch: found %s when expected an array type",
					c.types.Label(t, c.table)))
			elem = c.types.Builtins().Error
		}
		for i, sub := range p.Prefix {
			bc.elemPattern(scope, sub, elem, safecast.MustConv[uint32](i), false, out)
		}
		for j, sub := range p.Suffix {
			// Suffix slots count back from the end: the last suffix element
			// is index length-1.
			bc.elemPattern(scope, sub, elem, safecast.MustConv[uint32](len(p.Suffix)-j), true, out)
		}

	case *ast.FieldPattern:
		bc.fieldPattern(scope, p, t, out)

	default:
		panic(fmt.Sprintf("sema: unknown pattern %T", pat))
	}
}

func (bc *bodyChecker) elemPattern(scope symbols.ScopeID, sub ast.Pattern, elem types.TypeID, index uint32, fromEnd bool, out *[]Binding) {
	if b, ok := sub.(*ast.BindingPattern); ok {
		*out = append(*out, bc.declareBinding(scope, b.Name, b.Span, elem,
			Binding{IsElem: true, Index: index, FromEnd: fromEnd}))
		return
	}
	bc.patternInto(scope, sub, elem, out)
}

// fieldPattern checks `TypeName{field, other: sub}` destructuring: the named
// type must be class-like, the scrutinee must be related to it, and every
// referenced field must exist on the type or its ancestors. Binding types
// substitute the scrutinee's type arguments.
func (bc *bodyChecker) fieldPattern(scope symbols.ScopeID, p *ast.FieldPattern, t types.TypeID, out *[]Binding) {
	c := bc.c
	errT := c.types.Builtins().Error

	sym := c.table.Resolve(scope, c.table.Strings.Intern(p.TypeName))
	if !sym.IsValid() {
		c.errorf(diag.SemaUnresolvedType, p.TypeSpan,
			fmt.Sprintf("'%s' is not a known type", p.TypeName))
		sym = symbols.NoSymbolID
	} else if c.classes[sym] == nil {
		c.errorf(diag.SemaTypeErr, p.TypeSpan,
			fmt.Sprintf("type mismatch: found %s when expected a class or struct type", p.TypeName))
		sym = symbols.NoSymbolID
	}

	subst := make(map[symbols.SymbolID]types.TypeID)
	if tt, ok := c.types.Lookup(t); ok && !c.types.IsError(t) {
		switch {
		case tt.Kind != types.KindNominal:
			c.errorf(diag.SemaTypeErr, p.Span,
				fmt.Sprintf("type mismatch: found %s when expected a class or struct type",
					c.types.Label(t, c.table)))
		case sym.IsValid() && tt.Sym != sym && !bc.related(tt.Sym, sym):
			c.errorf(diag.SemaTypeErr, p.TypeSpan,
				fmt.Sprintf("type mismatch: found %s when expected %s",
					p.TypeName, c.types.Label(t, c.table)))
		case sym.IsValid() && tt.Sym == sym:
			info := c.classes[sym]
			for i, tp := range info.TypeParams {
				if i < len(tt.Args) {
					subst[tp] = tt.Args[i]
				}
			}
		}
	}

	for _, entry := range p.Fields {
		fieldType := errT
		if sym.IsValid() {
			if fieldSym := bc.lookupField(sym, entry.Name); fieldSym.IsValid() {
				fieldType = c.substitute(c.fields[fieldSym], subst)
			} else {
				c.errorf(diag.SemaUnresolvedMember, entry.NameSpan,
					fmt.Sprintf("'%s' has no member named '%s'", p.TypeName, entry.Name))
			}
		}
		switch sub := entry.Sub.(type) {
		case nil:
			*out = append(*out, bc.declareBinding(scope, entry.Name, entry.NameSpan, fieldType,
				Binding{Field: entry.Name}))
		case *ast.BindingPattern:
			*out = append(*out, bc.declareBinding(scope, sub.Name, sub.Span, fieldType,
				Binding{Field: entry.Name}))
		default:
			bc.patternInto(scope, sub, fieldType, out)
		}
	}
}

// lookupField finds a field by name on the class or its linearized
// ancestors, nearest first.
func (bc *bodyChecker) lookupField(class symbols.SymbolID, name string) symbols.SymbolID {
	c := bc.c
	nameID := c.table.Strings.Intern(name)
	chain := []symbols.SymbolID{class}
	if info := c.classes[class]; info != nil {
		chain = append(chain, info.Ancestors...)
	}
	for _, sym := range chain {
		scope := c.table.Get(sym).OwnScope
		if !scope.IsValid() {
			continue
		}
		if found := c.table.ResolveLocal(scope, nameID); found.IsValid() &&
			c.table.Get(found).Kind == symbols.KindField {
			return found
		}
	}
	return symbols.NoSymbolID
}

// related reports whether either class-like symbol is an ancestor of the
// other, which is what a field pattern needs: matching a base-typed
// scrutinee against a subtype pattern is a legal downcast test.
func (bc *bodyChecker) related(a, b symbols.SymbolID) bool {
	has := func(info *ClassInfo, target symbols.SymbolID) bool {
		if info == nil {
			return false
		}
		for _, anc := range info.Ancestors {
			if anc == target {
				return true
			}
		}
		return false
	}
	return has(bc.c.classes[a], b) || has(bc.c.classes[b], a)
}

func (bc *bodyChecker) declareBinding(scope symbols.ScopeID, name string, span source.Span, t types.TypeID, proto Binding) Binding {
	sym, ok := bc.c.declare(scope, name, span, symbols.KindLocal, 0)
	if ok {
		bc.locals[sym] = t
	}
	proto.Sym = sym
	proto.Name = name
	proto.Type = t
	proto.Span = span
	return proto
}

// elementType returns the element type when t is a sequence.
func (bc *bodyChecker) elementType(t types.TypeID) (types.TypeID, bool) {
	if bc.c.types.IsError(t) {
		return t, true
	}
	tt, ok := bc.c.types.Lookup(t)
	if !ok {
		return t, false
	}
	switch tt.Kind {
	case types.KindArray, types.KindStaticArray:
		return tt.Elem, true
	default:
		return t, false
	}
}

func (bc *bodyChecker) literalCompatible(k ast.LitKind, t types.TypeID) bool {
	c := bc.c
	if c.types.IsError(t) {
		return true
	}
	tt, ok := c.types.Lookup(t)
	if !ok {
		return true
	}
	if tt.Kind != types.KindPrimitive {
		// null matches any nominal (reference) scrutinee.
		return k == ast.LitNull && tt.Kind == types.KindNominal
	}
	switch k {
	case ast.LitInt:
		switch tt.Prim {
		case types.PrimInt8, types.PrimInt16, types.PrimInt32, types.PrimInt64,
			types.PrimUint8, types.PrimUint16, types.PrimUint32, types.PrimUint64:
			return true
		}
		return false
	case ast.LitFloat:
		return tt.Prim == types.PrimFloat || tt.Prim == types.PrimDouble
	case ast.LitString:
		return tt.Prim == types.PrimString
	case ast.LitBool:
		return tt.Prim == types.PrimBool
	case ast.LitNull:
		return tt.Prim.IsReferenceCategory()
	}
	return false
}

func (bc *bodyChecker) literalLabel(k ast.LitKind) string {
	switch k {
	case ast.LitInt:
		return "Int32"
	case ast.LitFloat:
		return "Float"
	case ast.LitString:
		return "String"
	case ast.LitBool:
		return "Bool"
	default:
		return "null"
	}
}

// substitute rewrites type-parameter references through the instantiation
// map, rebuilding composite types as needed.
func (c *Checker) substitute(t types.TypeID, subst map[symbols.SymbolID]types.TypeID) types.TypeID {
	if len(subst) == 0 {
		return t
	}
	tt, ok := c.types.Lookup(t)
	if !ok {
		return t
	}
	switch tt.Kind {
	case types.KindTypeParam:
		if r, found := subst[tt.Sym]; found {
			return r
		}
		return t
	case types.KindNominal:
		if len(tt.Args) == 0 {
			return t
		}
		args := make([]types.TypeID, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = c.substitute(a, subst)
		}
		return c.types.Intern(types.MakeNominal(tt.Sym, args))
	case types.KindArray:
		return c.types.Intern(types.MakeArray(c.substitute(tt.Elem, subst)))
	case types.KindStaticArray:
		return c.types.Intern(types.MakeStaticArray(c.substitute(tt.Elem, subst), tt.Count))
	case types.KindFunc:
		params := make([]types.TypeID, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = c.substitute(p, subst)
		}
		return c.types.Intern(types.MakeFunc(params, c.substitute(tt.Result, subst)))
	default:
		return t
	}
}
