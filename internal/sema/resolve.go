package sema

import (
	"fmt"

	"fortio.org/safecast"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/symbols"
	"volt/internal/types"
)

// resolveTypeExpr resolves a syntactic type reference into an interned
// TypeID. Every failure reports at the use site and yields the error
// sentinel, so the same malformed reference spelled in a base clause, a
// field type and a parameter type produces three independent diagnostics.
func (c *Checker) resolveTypeExpr(te ast.TypeExpr, scope symbols.ScopeID) types.TypeID {
	switch t := te.(type) {
	case *ast.NamedType:
		return c.resolveNamedType(t, scope)
	case *ast.ArrayType:
		elem := c.resolveTypeExpr(t.Elem, scope)
		if !t.HasLen {
			return c.types.Intern(types.MakeArray(elem))
		}
		count, err := safecast.Conv[uint32](t.Len)
		if err != nil {
			c.errorf(diag.LexBadNumber, t.Span, "array length out of range")
			return c.types.Builtins().Error
		}
		return c.types.Intern(types.MakeStaticArray(elem, count))
	case *ast.FuncType:
		params := make([]types.TypeID, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, c.resolveTypeExpr(p, scope))
		}
		result := c.types.Builtins().Void
		if t.Return != nil {
			result = c.resolveTypeExpr(t.Return, scope)
		}
		return c.types.Intern(types.MakeFunc(params, result))
	}
	panic(fmt.Sprintf("sema: unknown type expression %T", te))
}

func (c *Checker) resolveNamedType(t *ast.NamedType, scope symbols.ScopeID) types.TypeID {
	b := c.types.Builtins()
	if prim, ok := types.PrimitiveByName(t.Name); ok {
		if !c.checkArity(t, 0, scope) {
			return b.Error
		}
		return c.types.Primitive(prim)
	}

	sym := c.table.Resolve(scope, c.table.Strings.Intern(t.Name))
	if !sym.IsValid() {
		c.errorf(diag.SemaUnresolvedType, t.NameSpan,
			fmt.Sprintf("'%s' is not a known type", t.Name))
		c.resolveArgs(t, scope)
		return b.Error
	}

	switch c.table.Get(sym).Kind {
	case symbols.KindTypeParam:
		if !c.checkArity(t, 0, scope) {
			return b.Error
		}
		return c.types.Intern(types.MakeTypeParam(sym))
	case symbols.KindEnum:
		if !c.checkArity(t, 0, scope) {
			return b.Error
		}
		return c.types.Intern(types.MakeNominal(sym, nil))
	case symbols.KindImpl:
		if !c.checkArity(t, 0, scope) {
			return b.Error
		}
		return c.implTargetType(sym)
	case symbols.KindClass, symbols.KindStruct, symbols.KindInterface:
		return c.instantiate(sym, t, scope)
	default:
		c.errorf(diag.SemaUnresolvedType, t.NameSpan,
			fmt.Sprintf("'%s' is not a known type", t.Name))
		c.resolveArgs(t, scope)
		return b.Error
	}
}

// instantiate resolves a class-like reference with its type arguments,
// checking exact arity and bound satisfaction per argument.
func (c *Checker) instantiate(sym symbols.SymbolID, t *ast.NamedType, scope symbols.ScopeID) types.TypeID {
	info := c.classes[sym]
	args := c.resolveArgs(t, scope)
	if len(t.Args) != len(info.TypeParams) {
		c.errorf(diag.SemaInvalidTypeArgCount, t.Span,
			fmt.Sprintf("invalid number of type arguments, expected %d", len(info.TypeParams)))
		return c.types.Builtins().Error
	}
	for i, tpSym := range info.TypeParams {
		tp := c.typeParams[tpSym]
		c.resolveTypeParamBounds(tp)
		for _, bound := range tp.bounds {
			if !c.isSubtype(args[i], bound) {
				c.errorf(diag.SemaUnsatisfiedBound, ast.TypeExprSpan(t.Args[i]),
					fmt.Sprintf("type argument '%s' does not satisfy the bound '%s'",
						c.types.Label(args[i], c.table), c.types.Label(bound, c.table)))
			}
		}
	}
	return c.types.Intern(types.MakeNominal(sym, args))
}

// checkArity enforces an expected argument count of zero (primitives, type
// parameters, enums, specialization aliases). Arguments are still resolved
// for their own diagnostics.
func (c *Checker) checkArity(t *ast.NamedType, want int, scope symbols.ScopeID) bool {
	if len(t.Args) == want {
		return true
	}
	c.resolveArgs(t, scope)
	c.errorf(diag.SemaInvalidTypeArgCount, t.Span,
		fmt.Sprintf("invalid number of type arguments, expected %d", want))
	return false
}

func (c *Checker) resolveArgs(t *ast.NamedType, scope symbols.ScopeID) []types.TypeID {
	if len(t.Args) == 0 {
		return nil
	}
	args := make([]types.TypeID, 0, len(t.Args))
	for _, a := range t.Args {
		args = append(args, c.resolveTypeExpr(a, scope))
	}
	return args
}

// resolveTypeParamBounds resolves a parameter's declared bound list in the
// owner's scope. Memoized; the resolving marker keeps self-referential
// bounds such as `T: Comparable<T>` from recursing forever.
func (c *Checker) resolveTypeParamBounds(tp *typeParamInfo) {
	if tp == nil || tp.boundsState != stateUnresolved {
		return
	}
	tp.boundsState = stateResolving
	scope := c.table.Get(tp.owner).OwnScope
	for _, bound := range tp.decl.Bounds {
		tp.bounds = append(tp.bounds, c.resolveTypeExpr(bound, scope))
	}
	tp.boundsState = stateResolved
}

// isSubtype implements the bound-satisfaction relation. The error sentinel
// is compatible in both directions; nominal subtyping follows the linearized
// ancestor list; a type parameter satisfies what any of its bounds satisfy.
func (c *Checker) isSubtype(a, b types.TypeID) bool {
	if c.types.IsError(a) || c.types.IsError(b) {
		return true
	}
	if a == b {
		return true
	}
	at := c.types.MustLookup(a)
	bt := c.types.MustLookup(b)
	switch at.Kind {
	case types.KindNominal:
		if bt.Kind != types.KindNominal {
			return false
		}
		info := c.classes[at.Sym]
		if info == nil {
			return false
		}
		for _, anc := range info.Ancestors {
			if anc == bt.Sym {
				return true
			}
		}
		return false
	case types.KindTypeParam:
		tp := c.typeParams[at.Sym]
		if tp == nil {
			return false
		}
		for _, bound := range tp.bounds {
			if c.isSubtype(bound, b) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// resolveClassSignatures resolves everything a class declares: its type
// parameter bounds, the base and implements clauses (re-checked here so
// arity and bound violations anchor at the clause), and every member
// signature and field type.
func (c *Checker) resolveClassSignatures(sym symbols.SymbolID) {
	info := c.classes[sym]
	if info == nil {
		return
	}
	scope := c.table.Get(sym).OwnScope
	for _, tpSym := range info.TypeParams {
		c.resolveTypeParamBounds(c.typeParams[tpSym])
	}

	if info.Decl.Base != nil && info.Base.IsValid() {
		baseType := c.resolveNamedType(info.Decl.Base, scope)
		if bt, ok := c.types.Lookup(baseType); ok && bt.Kind == types.KindNominal {
			info.BaseArgs = bt.Args
		}
	}
	for _, ref := range info.Decl.Implements {
		// Unresolvable names were already reported by the hierarchy pass.
		s := c.table.Resolve(c.table.ModuleScope(), c.table.Strings.Intern(ref.Name))
		if s.IsValid() && c.classes[s] != nil {
			c.resolveNamedType(ref, scope)
		}
	}

	for _, member := range c.table.Scopes.Get(scope).Symbols {
		switch c.table.Get(member).Kind {
		case symbols.KindFunc:
			c.resolveFuncSignature(member, sym)
		case symbols.KindField:
			c.resolveFieldType(member, sym)
		}
	}
}

// resolveFuncSignature resolves parameter and return types in the function's
// own scope, so the function's type parameters are visible. Methods
// additionally get their signature checked against the owning class's
// declared variance.
func (c *Checker) resolveFuncSignature(sym, owner symbols.SymbolID) {
	fi := c.funcs[sym]
	if fi == nil || fi.SigType.IsValid() {
		return
	}
	decl := fi.Decl
	scope := c.table.Get(sym).OwnScope

	for _, declared := range c.table.Scopes.Get(scope).Symbols {
		if c.table.Get(declared).Kind == symbols.KindTypeParam {
			c.resolveTypeParamBounds(c.typeParams[declared])
		}
	}

	params := make([]types.TypeID, 0, len(decl.Params))
	for _, p := range decl.Params {
		params = append(params, c.resolveTypeExpr(p.Type, scope))
	}
	result := c.types.Builtins().Void
	if decl.Return != nil {
		result = c.resolveTypeExpr(decl.Return, scope)
	}
	fi.Params = params
	fi.Result = result
	fi.SigType = c.types.Intern(types.MakeFunc(params, result))

	if owner.IsValid() {
		c.checkSignatureVariance(sym)
	}
}

func (c *Checker) resolveFieldType(sym, owner symbols.SymbolID) {
	if _, done := c.fields[sym]; done {
		return
	}
	decl := c.fieldDecl[sym]
	t := c.types.Builtins().Error
	if decl.Type != nil {
		t = c.resolveTypeExpr(decl.Type, c.table.Get(sym).Scope)
	}
	c.fields[sym] = t
	_ = owner
}

// implTargetType resolves a specialization alias to its target type on
// demand. The sentinel pre-seed keeps alias chains that loop back on
// themselves from recursing.
func (c *Checker) implTargetType(sym symbols.SymbolID) types.TypeID {
	if t, ok := c.implTarget[sym]; ok {
		return t
	}
	c.implTarget[sym] = c.types.Builtins().Error
	t := c.resolveNamedType(c.implDecl[sym].Target, c.table.ModuleScope())
	c.implTarget[sym] = t
	return t
}

// resolveImpl checks one specialization declaration for uniqueness: two
// impls naming the same instantiated target are DUP_IMPL at the second one,
// regardless of the alias names.
func (c *Checker) resolveImpl(sym symbols.SymbolID) {
	decl := c.implDecl[sym]
	target := c.implTargetType(sym)
	if c.types.IsError(target) {
		return
	}
	tt := c.types.MustLookup(target)
	if tt.Kind != types.KindNominal || len(tt.Args) == 0 {
		return
	}
	if _, dup := c.implKeys[target]; dup {
		c.errorf(diag.SemaDupImpl, decl.Target.Span,
			fmt.Sprintf("a specialization for '%s' is already defined",
				c.types.Label(target, c.table)))
		return
	}
	c.implKeys[target] = sym
}
