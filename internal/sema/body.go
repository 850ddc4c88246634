package sema

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/symbols"
	"volt/internal/token"
	"volt/internal/types"
)

// bodyChecker walks one function body: it builds block scopes, tracks local
// types, and resolves the patterns the body matches on. Expression inference
// is deliberately shallow; anything it cannot type becomes the error
// sentinel without a diagnostic, except identifiers in scrutinee and guard
// position, which report UNRESOLVED_REF.
type bodyChecker struct {
	c      *Checker
	fn     *FuncInfo
	owner  symbols.SymbolID
	locals map[symbols.SymbolID]types.TypeID
}

// checkClassBodies checks every method body of one class, in member order.
func (c *Checker) checkClassBodies(sym symbols.SymbolID) {
	scope := c.table.Scopes.Get(c.table.Get(sym).OwnScope)
	for _, member := range scope.Symbols {
		if c.table.Get(member).Kind == symbols.KindFunc {
			c.checkBody(member, sym)
		}
	}
}

// checkFuncBody checks a free function's body.
func (c *Checker) checkFuncBody(sym symbols.SymbolID) {
	c.checkBody(sym, symbols.NoSymbolID)
}

func (c *Checker) checkBody(sym, owner symbols.SymbolID) {
	fi := c.funcs[sym]
	if fi == nil || fi.Decl.Body == nil {
		return
	}
	bc := &bodyChecker{
		c:      c,
		fn:     fi,
		owner:  owner,
		locals: make(map[symbols.SymbolID]types.TypeID),
	}
	scope := c.table.Get(sym).OwnScope
	for i, p := range fi.Decl.Params {
		local, ok := c.declare(scope, p.Name, p.NameSpan, symbols.KindLocal, 0)
		if ok && i < len(fi.Params) {
			bc.locals[local] = fi.Params[i]
		}
	}
	bc.checkBlock(scope, fi.Decl.Body)
}

func (bc *bodyChecker) checkBlock(parent symbols.ScopeID, b *ast.Block) {
	scope := bc.c.table.NewScope(symbols.ScopeBlock, parent, bc.fn.Sym, b.Span)
	for _, st := range b.Stmts {
		bc.checkStmt(scope, st)
	}
}

func (bc *bodyChecker) checkStmt(scope symbols.ScopeID, st ast.Stmt) {
	c := bc.c
	switch st := st.(type) {
	case *ast.Block:
		bc.checkBlock(scope, st)

	case *ast.LetStmt:
		t := c.types.Builtins().Error
		if st.Type != nil {
			t = c.resolveTypeExpr(st.Type, scope)
			if st.Init != nil {
				bc.inferExpr(scope, st.Init, false)
			}
		} else if st.Init != nil {
			t = bc.inferExpr(scope, st.Init, false)
		}
		if local, ok := c.declare(scope, st.Name, st.NameSpan, symbols.KindLocal, 0); ok {
			bc.locals[local] = t
		}

	case *ast.IfStmt:
		bc.inferExpr(scope, st.Cond, false)
		bc.checkBlock(scope, st.Then)
		if st.Else != nil {
			bc.checkStmt(scope, st.Else)
		}

	case *ast.IfLetStmt:
		bc.checkIfLet(scope, st)

	case *ast.WhileStmt:
		bc.inferExpr(scope, st.Cond, false)
		bc.checkBlock(scope, st.Body)

	case *ast.ForStmt:
		iter := bc.inferExpr(scope, st.Iterable, false)
		elem, ok := bc.elementType(iter)
		if !ok {
			elem = c.types.Builtins().Error
		}
		body := c.table.NewScope(symbols.ScopeBlock, scope, bc.fn.Sym, st.Body.Span)
		if local, declared := c.declare(body, st.Var, st.VarSpan, symbols.KindLocal, 0); declared {
			bc.locals[local] = elem
		}
		for _, s := range st.Body.Stmts {
			bc.checkStmt(body, s)
		}

	case *ast.SwitchStmt:
		bc.checkSwitch(scope, st)

	case *ast.ReturnStmt:
		if st.Value != nil {
			bc.inferExpr(scope, st.Value, false)
		}

	case *ast.BreakStmt, *ast.ContinueStmt:

	case *ast.ExprStmt:
		bc.inferExpr(scope, st.X, false)

	default:
		panic(fmt.Sprintf("sema: unknown statement %T", st))
	}
}

// checkSwitch resolves every arm against the scrutinee and lowers the
// statement into a Match recorded for the backend. Arms are kept in source
// order; the first matching arm wins at runtime.
func (bc *bodyChecker) checkSwitch(scope symbols.ScopeID, st *ast.SwitchStmt) {
	c := bc.c
	scrut := bc.inferExpr(scope, st.Scrutinee, true)
	m := &Match{Span: st.Span, Scrutinee: scrut}

	for _, arm := range st.Arms {
		armScope := c.table.NewScope(symbols.ScopeBlock, scope, bc.fn.Sym, arm.Span)
		lowered := Arm{
			Span:      arm.Span,
			Pattern:   arm.Pattern,
			Guard:     arm.Guard,
			Body:      arm.Body,
			IsDefault: arm.IsDefault,
		}
		if arm.IsDefault {
			m.HasFallback = true
		} else {
			lowered.Bindings = bc.checkPattern(armScope, arm.Pattern, scrut)
		}
		if arm.Guard != nil {
			bc.checkGuard(armScope, arm.Guard)
		}
		for _, s := range arm.Body {
			bc.checkStmt(armScope, s)
		}
		m.Arms = append(m.Arms, lowered)
	}

	c.matches[bc.fn.Sym] = append(c.matches[bc.fn.Sym], m)
}

// checkIfLet lowers the single-arm conditional binding form. The no-match
// fallthrough is implicit, so the Match always has a fallback.
func (bc *bodyChecker) checkIfLet(scope symbols.ScopeID, st *ast.IfLetStmt) {
	c := bc.c
	val := bc.inferExpr(scope, st.Value, true)
	armScope := c.table.NewScope(symbols.ScopeBlock, scope, bc.fn.Sym, st.Then.Span)
	bindings := bc.checkPattern(armScope, st.Pattern, val)
	for _, s := range st.Then.Stmts {
		bc.checkStmt(armScope, s)
	}
	if st.Else != nil {
		bc.checkBlock(scope, st.Else)
	}

	c.matches[bc.fn.Sym] = append(c.matches[bc.fn.Sym], &Match{
		Span:        st.Span,
		Scrutinee:   val,
		HasFallback: true,
		Arms: []Arm{{
			Span:     st.Span,
			Pattern:  st.Pattern,
			Bindings: bindings,
			Body:     st.Then.Stmts,
		}},
	})
}

func (bc *bodyChecker) checkGuard(scope symbols.ScopeID, guard ast.Expr) {
	c := bc.c
	t := bc.inferExpr(scope, guard, true)
	if c.types.IsError(t) || t == c.types.Builtins().Bool {
		return
	}
	c.errorf(diag.SemaTypeErr, ast.ExprSpan(guard),
		fmt.Sprintf("type mismatch: found %s when expected Bool", c.types.Label(t, c.table)))
}

// inferExpr computes the type of an expression as far as pattern checking
// needs. report enables UNRESOLVED_REF for unknown identifiers and is only
// set in scrutinee and guard positions.
func (bc *bodyChecker) inferExpr(scope symbols.ScopeID, e ast.Expr, report bool) types.TypeID {
	c := bc.c
	b := c.types.Builtins()
	switch e := e.(type) {
	case *ast.LiteralExpr:
		switch e.Kind {
		case ast.LitInt:
			return b.Int32
		case ast.LitFloat:
			return b.Float
		case ast.LitString:
			return b.String
		case ast.LitBool:
			return b.Bool
		default:
			return b.Error
		}

	case *ast.IdentExpr:
		sym := c.table.Resolve(scope, c.table.Strings.Intern(e.Name))
		if !sym.IsValid() {
			if report {
				c.errorf(diag.SemaUnresolvedRef, e.Span,
					fmt.Sprintf("'%s' is not defined", e.Name))
			}
			return b.Error
		}
		return bc.symbolValueType(sym)

	case *ast.ThisExpr:
		if !bc.owner.IsValid() {
			return b.Error
		}
		info := bc.c.classes[bc.owner]
		args := make([]types.TypeID, 0, len(info.TypeParams))
		for _, tp := range info.TypeParams {
			args = append(args, c.types.Intern(types.MakeTypeParam(tp)))
		}
		return c.types.Intern(types.MakeNominal(bc.owner, args))

	case *ast.MemberExpr:
		recv := bc.inferExpr(scope, e.Recv, false)
		return bc.memberType(recv, e.Name)

	case *ast.IndexExpr:
		recv := bc.inferExpr(scope, e.Recv, false)
		bc.inferExpr(scope, e.Index, false)
		if elem, ok := bc.elementType(recv); ok {
			return elem
		}
		return b.Error

	case *ast.CallExpr:
		callee := bc.inferExpr(scope, e.Callee, false)
		for _, a := range e.Args {
			bc.inferExpr(scope, a, false)
		}
		if tt, ok := c.types.Lookup(callee); ok && tt.Kind == types.KindFunc {
			return tt.Result
		}
		return b.Error

	case *ast.NewExpr:
		t := c.resolveNamedType(e.Type, scope)
		for _, a := range e.Args {
			bc.inferExpr(scope, a, false)
		}
		return t

	case *ast.UnaryExpr:
		x := bc.inferExpr(scope, e.X, false)
		if e.Op == token.Bang {
			return b.Bool
		}
		return x

	case *ast.BinaryExpr:
		x := bc.inferExpr(scope, e.X, false)
		y := bc.inferExpr(scope, e.Y, false)
		switch e.Op {
		case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
			token.AndAnd, token.OrOr:
			return b.Bool
		}
		if c.types.IsError(x) {
			return y
		}
		return x

	case *ast.AssignExpr:
		bc.inferExpr(scope, e.Target, false)
		return bc.inferExpr(scope, e.Value, false)

	default:
		return b.Error
	}
}

// symbolValueType maps a resolved symbol to the type it carries in value
// position.
func (bc *bodyChecker) symbolValueType(sym symbols.SymbolID) types.TypeID {
	c := bc.c
	b := c.types.Builtins()
	s := c.table.Get(sym)
	switch s.Kind {
	case symbols.KindLocal:
		if t, ok := bc.locals[sym]; ok {
			return t
		}
		return b.Error
	case symbols.KindField:
		if t, ok := c.fields[sym]; ok {
			return t
		}
		return b.Error
	case symbols.KindFunc:
		if fi := c.funcs[sym]; fi != nil && fi.SigType.IsValid() {
			return fi.SigType
		}
		return b.Error
	case symbols.KindEnumVariant:
		if owner := c.table.Scopes.Get(s.Scope).Owner; owner.IsValid() {
			return c.types.Intern(types.MakeNominal(owner, nil))
		}
		return b.Error
	case symbols.KindEnum:
		// The enum name in value position carries the enum type so variant
		// access `Color.Red` resolves through memberType.
		return c.types.Intern(types.MakeNominal(sym, nil))
	default:
		return b.Error
	}
}

// memberType resolves `recv.name` for field and method access on a nominal
// receiver, substituting the receiver's type arguments. Unknown members stay
// silent; patterns report their own UNRESOLVED_MEMBER.
func (bc *bodyChecker) memberType(recv types.TypeID, name string) types.TypeID {
	c := bc.c
	b := c.types.Builtins()
	tt, ok := c.types.Lookup(recv)
	if !ok || tt.Kind != types.KindNominal {
		return b.Error
	}
	info := c.classes[tt.Sym]
	subst := make(map[symbols.SymbolID]types.TypeID)
	if info != nil {
		for i, tp := range info.TypeParams {
			if i < len(tt.Args) {
				subst[tp] = tt.Args[i]
			}
		}
	}

	nameID := c.table.Strings.Intern(name)
	chain := []symbols.SymbolID{tt.Sym}
	if info != nil {
		chain = append(chain, info.Ancestors...)
	}
	for _, class := range chain {
		scope := c.table.Get(class).OwnScope
		if !scope.IsValid() {
			continue
		}
		member := c.table.ResolveLocal(scope, nameID)
		if !member.IsValid() {
			continue
		}
		switch c.table.Get(member).Kind {
		case symbols.KindField:
			return c.substitute(c.fields[member], subst)
		case symbols.KindFunc:
			if fi := c.funcs[member]; fi != nil && fi.SigType.IsValid() {
				return c.substitute(fi.SigType, subst)
			}
		case symbols.KindEnumVariant:
			return c.types.Intern(types.MakeNominal(class, nil))
		}
		return b.Error
	}
	return b.Error
}
