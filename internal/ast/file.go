// Package ast defines the syntax tree for Volt compilation units.
//
// Every declaration kind is a closed variant: the Item/Member/Stmt/Expr/
// Pattern/TypeExpr interfaces are sealed by unexported marker methods, so a
// type switch over them covers the whole language. Nodes carry the spans the
// semantic passes anchor diagnostics on; the tree never needs re-parsing.
package ast

import "volt/internal/source"

// File is one parsed compilation unit.
type File struct {
	FileID source.FileID
	Module *ModuleDecl // optional `module a.b.c` header
	Items  []Item
}

// ModuleDecl is the optional module header naming the unit.
type ModuleDecl struct {
	Span source.Span
	Path []string
}

// Name renders the dotted module path.
func (m *ModuleDecl) Name() string {
	out := ""
	for i, p := range m.Path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
