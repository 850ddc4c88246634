package ast

import "volt/internal/source"

// ItemSpan returns the full span of any top-level item.
func ItemSpan(it Item) source.Span {
	switch it := it.(type) {
	case *ClassDecl:
		return it.Span
	case *EnumDecl:
		return it.Span
	case *FuncDecl:
		return it.Span
	case *FieldDecl:
		return it.Span
	case *ImplDecl:
		return it.Span
	}
	panic("ast: unknown Item variant")
}

// ItemName returns the declared name of any top-level item.
func ItemName(it Item) string {
	switch it := it.(type) {
	case *ClassDecl:
		return it.Name
	case *EnumDecl:
		return it.Name
	case *FuncDecl:
		return it.Name
	case *FieldDecl:
		return it.Name
	case *ImplDecl:
		return it.Name
	}
	panic("ast: unknown Item variant")
}

// ItemNameSpan returns the span of the declared name, the anchor most
// diagnostics point at.
func ItemNameSpan(it Item) source.Span {
	switch it := it.(type) {
	case *ClassDecl:
		return it.NameSpan
	case *EnumDecl:
		return it.NameSpan
	case *FuncDecl:
		return it.NameSpan
	case *FieldDecl:
		return it.NameSpan
	case *ImplDecl:
		return it.NameSpan
	}
	panic("ast: unknown Item variant")
}
