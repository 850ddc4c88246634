package ast

import "volt/internal/source"

// Stmt is a statement inside a block. Closed set.
type Stmt interface{ isStmt() }

func (*Block) isStmt()        {}
func (*LetStmt) isStmt()      {}
func (*IfStmt) isStmt()       {}
func (*IfLetStmt) isStmt()    {}
func (*WhileStmt) isStmt()    {}
func (*ForStmt) isStmt()      {}
func (*SwitchStmt) isStmt()   {}
func (*ReturnStmt) isStmt()   {}
func (*BreakStmt) isStmt()    {}
func (*ContinueStmt) isStmt() {}
func (*ExprStmt) isStmt()     {}

// Block is a braced statement list owning its own scope.
type Block struct {
	Span  source.Span
	Stmts []Stmt
}

// LetStmt is a local binding `let x: T = init;`. Type and Init are each
// optional but at least one is present in well-formed source.
type LetStmt struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Type     TypeExpr // nil when inferred
	Init     Expr     // nil when only declared
}

// IfStmt is a plain conditional; Else is nil, a *Block, or another *IfStmt.
type IfStmt struct {
	Span source.Span
	Cond Expr
	Then *Block
	Else Stmt
}

// IfLetStmt is the single-arm conditional binding form
// `if let pattern = expr { ... } else { ... }` with implicit no-match
// fallthrough.
type IfLetStmt struct {
	Span    source.Span
	Pattern Pattern
	Value   Expr
	Then    *Block
	Else    *Block // nil when absent
}

// WhileStmt loops while Cond holds.
type WhileStmt struct {
	Span source.Span
	Cond Expr
	Body *Block
}

// ForStmt is `for item in items { ... }`.
type ForStmt struct {
	Span     source.Span
	VarSpan  source.Span
	Var      string
	Iterable Expr
	Body     *Block
}

// SwitchStmt matches Scrutinee against the arms top to bottom.
type SwitchStmt struct {
	Span      source.Span
	Scrutinee Expr
	Arms      []CaseArm
}

// CaseArm is one `case pattern if guard:` arm or the `default:` arm
// (IsDefault true, Pattern nil).
type CaseArm struct {
	Span      source.Span
	Pattern   Pattern // nil for default
	Guard     Expr    // nil when absent
	Body      []Stmt
	IsDefault bool
}

// ReturnStmt returns Value (nil for a bare return).
type ReturnStmt struct {
	Span  source.Span
	Value Expr
}

// BreakStmt exits the nearest loop or switch.
type BreakStmt struct {
	Span source.Span
}

// ContinueStmt resumes the nearest loop.
type ContinueStmt struct {
	Span source.Span
}

// ExprStmt evaluates an expression for effect.
type ExprStmt struct {
	Span source.Span
	X    Expr
}
