package sema

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/symbols"
)

// Variance position polarity. Parameters are input positions, returns are
// output positions; a nested function type flips its parameters once more.
type polarity int8

const (
	positionOut polarity = 1  // covariant position
	positionIn  polarity = -1 // contravariant position
)

func (p polarity) flip() polarity { return -p }

func (p polarity) String() string {
	if p == positionIn {
		return "contravariant"
	}
	return "covariant"
}

// checkSignatureVariance validates every type-parameter occurrence inside a
// method signature against the parameter's declared variance. Invariant
// parameters pass everywhere; a covariant one may not occur in an input
// position and a contravariant one may not occur in an output position.
// Each offending occurrence reports independently at its own span.
func (c *Checker) checkSignatureVariance(sym symbols.SymbolID) {
	fi := c.funcs[sym]
	if fi == nil {
		return
	}
	scope := c.table.Get(sym).OwnScope
	for _, p := range fi.Decl.Params {
		c.checkVariancePositions(scope, p.Type, positionIn)
	}
	if fi.Decl.Return != nil {
		c.checkVariancePositions(scope, fi.Decl.Return, positionOut)
	}
}

func (c *Checker) checkVariancePositions(scope symbols.ScopeID, te ast.TypeExpr, pos polarity) {
	switch t := te.(type) {
	case *ast.NamedType:
		c.checkVarianceOccurrence(scope, t, pos)
		for _, a := range t.Args {
			c.checkVariancePositions(scope, a, pos)
		}
	case *ast.ArrayType:
		c.checkVariancePositions(scope, t.Elem, pos)
	case *ast.FuncType:
		for _, p := range t.Params {
			c.checkVariancePositions(scope, p, pos.flip())
		}
		if t.Return != nil {
			c.checkVariancePositions(scope, t.Return, pos)
		}
	}
}

func (c *Checker) checkVarianceOccurrence(scope symbols.ScopeID, t *ast.NamedType, pos polarity) {
	sym := c.table.Resolve(scope, c.table.Strings.Intern(t.Name))
	if !sym.IsValid() || c.table.Get(sym).Kind != symbols.KindTypeParam {
		return
	}
	tp := c.typeParams[sym]
	if tp == nil {
		return
	}
	switch {
	case tp.variance == ast.Covariant && pos == positionIn,
		tp.variance == ast.Contravariant && pos == positionOut:
		c.errorf(diag.SemaInvalidVariance, t.NameSpan,
			fmt.Sprintf("%s type parameter '%s' used in %s position",
				tp.variance, t.Name, pos))
	}
}
