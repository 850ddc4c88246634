package ast

import "volt/internal/source"

// Pattern is a structural pattern in a case arm or if-let binding. Closed
// set: wildcard, binding, literal, array (with at most one rest marker) and
// class/struct field destructuring.
type Pattern interface{ isPattern() }

func (*WildcardPattern) isPattern() {}
func (*BindingPattern) isPattern()  {}
func (*LiteralPattern) isPattern()  {}
func (*ArrayPattern) isPattern()    {}
func (*FieldPattern) isPattern()    {}

// WildcardPattern `_` matches anything and binds nothing.
type WildcardPattern struct {
	Span source.Span
}

// BindingPattern captures the matched value under Name.
type BindingPattern struct {
	Span source.Span
	Name string
}

// LiteralPattern matches when the scrutinee equals the literal value.
type LiteralPattern struct {
	Span source.Span
	Lit  *LiteralExpr
}

// ArrayPattern destructures a sequence. Prefix elements match from the
// front, Suffix elements from the back; HasRest marks the `..` splitting
// them. Without a rest marker Suffix is empty and the match is exact-length.
type ArrayPattern struct {
	Span     source.Span
	RestSpan source.Span
	Prefix   []Pattern
	Suffix   []Pattern
	HasRest  bool
}

// MinLen is the smallest sequence length the pattern can match.
func (p *ArrayPattern) MinLen() int {
	return len(p.Prefix) + len(p.Suffix)
}

// FieldPattern destructures a class/struct by field name; unlisted fields
// are ignored.
type FieldPattern struct {
	Span     source.Span
	TypeSpan source.Span
	TypeName string
	Fields   []FieldPatternEntry
}

// FieldPatternEntry matches one field. Sub is nil for the shorthand
// `Vec2{x}` which binds the field under its own name.
type FieldPatternEntry struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Sub      Pattern
}

// PatternSpan returns the span of any pattern.
func PatternSpan(p Pattern) source.Span {
	switch p := p.(type) {
	case *WildcardPattern:
		return p.Span
	case *BindingPattern:
		return p.Span
	case *LiteralPattern:
		return p.Span
	case *ArrayPattern:
		return p.Span
	case *FieldPattern:
		return p.Span
	}
	panic("ast: unknown Pattern variant")
}
