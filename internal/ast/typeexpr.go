package ast

import (
	"strconv"
	"strings"

	"volt/internal/source"
)

// TypeExpr is a syntactic type reference. Closed set: NamedType, ArrayType,
// FuncType.
type TypeExpr interface{ isTypeExpr() }

func (*NamedType) isTypeExpr() {}
func (*ArrayType) isTypeExpr() {}
func (*FuncType) isTypeExpr()  {}

// NamedType references a primitive, class, struct, enum or type parameter by
// name, with optional type arguments.
type NamedType struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Args     []TypeExpr
}

// ArrayType is `[T]` (dynamic) or `[T; N]` (static).
type ArrayType struct {
	Span   source.Span
	Elem   TypeExpr
	HasLen bool
	Len    int64
}

// FuncType is `(A, B) -> R`.
type FuncType struct {
	Span   source.Span
	Params []TypeExpr
	Return TypeExpr
}

// TypeExprSpan returns the span of any type expression.
func TypeExprSpan(t TypeExpr) source.Span {
	switch t := t.(type) {
	case *NamedType:
		return t.Span
	case *ArrayType:
		return t.Span
	case *FuncType:
		return t.Span
	}
	panic("ast: unknown TypeExpr variant")
}

// TypeExprString renders a type expression the way it was spelled, used by
// diagnostics that quote the source type.
func TypeExprString(t TypeExpr) string {
	switch t := t.(type) {
	case *NamedType:
		if len(t.Args) == 0 {
			return t.Name
		}
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = TypeExprString(a)
		}
		return t.Name + "<" + strings.Join(parts, ", ") + ">"
	case *ArrayType:
		if t.HasLen {
			return "[" + TypeExprString(t.Elem) + "; " + strconv.FormatInt(t.Len, 10) + "]"
		}
		return "[" + TypeExprString(t.Elem) + "]"
	case *FuncType:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = TypeExprString(p)
		}
		ret := "Void"
		if t.Return != nil {
			ret = TypeExprString(t.Return)
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + ret
	}
	panic("ast: unknown TypeExpr variant")
}
