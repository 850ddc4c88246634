package ast

import (
	"volt/internal/source"
	"volt/internal/token"
)

// Expr is an expression. Closed set.
type Expr interface{ isExpr() }

func (*IdentExpr) isExpr()   {}
func (*LiteralExpr) isExpr() {}
func (*ThisExpr) isExpr()    {}
func (*MemberExpr) isExpr()  {}
func (*IndexExpr) isExpr()   {}
func (*CallExpr) isExpr()    {}
func (*NewExpr) isExpr()     {}
func (*UnaryExpr) isExpr()   {}
func (*BinaryExpr) isExpr()  {}
func (*AssignExpr) isExpr()  {}

// LitKind classifies literal expressions.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
	LitNull
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	case LitNull:
		return "null"
	}
	return "invalid"
}

// IdentExpr is a bare name.
type IdentExpr struct {
	Span source.Span
	Name string
}

// LiteralExpr is a literal; Text keeps the source spelling.
type LiteralExpr struct {
	Span source.Span
	Kind LitKind
	Text string
}

// ThisExpr is the receiver reference.
type ThisExpr struct {
	Span source.Span
}

// MemberExpr is `recv.name`.
type MemberExpr struct {
	Span     source.Span
	NameSpan source.Span
	Recv     Expr
	Name     string
}

// IndexExpr is `recv[index]`.
type IndexExpr struct {
	Span  source.Span
	Recv  Expr
	Index Expr
}

// CallExpr is `callee(args)`.
type CallExpr struct {
	Span   source.Span
	Callee Expr
	Args   []Expr
}

// NewExpr is `new T(args)`.
type NewExpr struct {
	Span source.Span
	Type *NamedType
	Args []Expr
}

// UnaryExpr is `-x` or `!x`.
type UnaryExpr struct {
	Span source.Span
	Op   token.Kind
	X    Expr
}

// BinaryExpr is a binary operation; Op is the operator token kind.
type BinaryExpr struct {
	Span source.Span
	Op   token.Kind
	X    Expr
	Y    Expr
}

// AssignExpr is `target = value`.
type AssignExpr struct {
	Span   source.Span
	Target Expr
	Value  Expr
}

// ExprSpan returns the span of any expression.
func ExprSpan(e Expr) source.Span {
	switch e := e.(type) {
	case *IdentExpr:
		return e.Span
	case *LiteralExpr:
		return e.Span
	case *ThisExpr:
		return e.Span
	case *MemberExpr:
		return e.Span
	case *IndexExpr:
		return e.Span
	case *CallExpr:
		return e.Span
	case *NewExpr:
		return e.Span
	case *UnaryExpr:
		return e.Span
	case *BinaryExpr:
		return e.Span
	case *AssignExpr:
		return e.Span
	}
	panic("ast: unknown Expr variant")
}
