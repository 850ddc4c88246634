package ast

import "volt/internal/source"

// Item is a top-level declaration. The set is closed: ClassDecl, EnumDecl,
// FuncDecl, FieldDecl (module-level let) and ImplDecl.
type Item interface{ isItem() }

func (*ClassDecl) isItem() {}
func (*EnumDecl) isItem()  {}
func (*FuncDecl) isItem()  {}
func (*FieldDecl) isItem() {}
func (*ImplDecl) isItem()  {}

// Member is a declaration inside a class/struct/interface body.
type Member interface{ isMember() }

func (*FuncDecl) isMember()  {}
func (*FieldDecl) isMember() {}

// ClassKind distinguishes the three nominal declaration forms that share
// ClassDecl's shape.
type ClassKind uint8

const (
	KindClass ClassKind = iota
	KindStruct
	KindInterface
)

func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	}
	return "invalid"
}

// ClassDecl declares a class, struct or interface.
type ClassDecl struct {
	Span        source.Span
	NameSpan    source.Span
	Name        string
	Kind        ClassKind
	Quals       Quals
	Annotations []Annotation
	TypeParams  []TypeParam
	Base        *NamedType // extends clause, nil when absent
	Implements  []*NamedType
	Members     []Member
}

// EnumDecl declares an enumeration of named variants.
type EnumDecl struct {
	Span        source.Span
	NameSpan    source.Span
	Name        string
	Quals       Quals
	Annotations []Annotation
	Variants    []EnumVariant
}

// EnumVariant is one variant, optionally with an explicit integer value.
type EnumVariant struct {
	Span     source.Span
	Name     string
	HasValue bool
	Value    int64
}

// FuncDecl declares a free function or a method. Body is nil when the
// declaration carries no block (native, abstract, interface signatures).
type FuncDecl struct {
	Span        source.Span
	NameSpan    source.Span
	Name        string
	Quals       Quals
	Annotations []Annotation
	TypeParams  []TypeParam
	Params      []Param
	Return      TypeExpr // nil means Void
	Body        *Block
}

// Param is a single function parameter.
type Param struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Type     TypeExpr
}

// FieldDecl declares a `let` field, either at module level or inside a type.
type FieldDecl struct {
	Span        source.Span
	NameSpan    source.Span
	Name        string
	Quals       Quals
	Annotations []Annotation
	Type        TypeExpr
}

// ImplDecl declares a generic specialization:
// `impl Name = Generic<Args>`.
type ImplDecl struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Target   *NamedType
}

// Variance is a type parameter's declared variance.
type Variance uint8

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	}
	return "invariant"
}

// TypeParam declares one generic parameter with optional variance prefix and
// bound list: `<T, +U, -V: Base + Show>`.
type TypeParam struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Variance Variance
	Bounds   []TypeExpr
}
