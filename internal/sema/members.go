package sema

import (
	"fmt"
	"strings"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/symbols"
	"volt/internal/types"
)

// checkFreeFunc applies the body rule to a module-level function: anything
// that is neither native nor abstract needs a block.
func (c *Checker) checkFreeFunc(sym symbols.SymbolID) {
	decl := c.funcDecl[sym]
	flags := c.table.Get(sym).Flags
	if decl.Body == nil && !flags.Has(symbols.FlagNative) && !flags.Has(symbols.FlagAbstract) {
		c.errorf(diag.SemaMissingBody, decl.NameSpan,
			fmt.Sprintf("'%s' requires a body", decl.Name))
	}
}

// checkMembers runs the per-member rule families over one class-like
// declaration. Every rule checks and reports independently, so one method
// can surface several violations at once.
func (c *Checker) checkMembers(sym symbols.SymbolID) {
	info := c.classes[sym]
	decl := info.Decl
	isStruct := decl.Kind == ast.KindStruct
	isInterface := decl.Kind == ast.KindInterface
	nativeType := decl.Quals.Has(ast.QualNative)
	scope := c.table.Scopes.Get(c.table.Get(sym).OwnScope)

	type shape struct {
		name source.StringID
		sig  types.TypeID
	}
	seen := make(map[shape]bool)
	dupReported := false

	for _, member := range scope.Symbols {
		s := c.table.Get(member)
		switch s.Kind {
		case symbols.KindFunc:
			fd := c.funcDecl[member]
			if fd.Body == nil && !isInterface &&
				!s.Flags.Has(symbols.FlagAbstract) && !s.Flags.Has(symbols.FlagNative) {
				c.errorf(diag.SemaMissingBody, fd.NameSpan,
					fmt.Sprintf("'%s' requires a body", fd.Name))
			}
			if s.Flags.Has(symbols.FlagNative) && !nativeType {
				c.errorf(diag.SemaUnexpectedNative, fd.NameSpan,
					fmt.Sprintf("'%s' is marked native but declared in a scripted type", fd.Name))
			}
			if isStruct && !s.Flags.Has(symbols.FlagStatic) {
				c.errorf(diag.SemaNonStaticStructFn, fd.NameSpan, "struct functions must be static")
			}

			if fi := c.funcs[member]; fi != nil {
				key := shape{s.Name, fi.SigType}
				if seen[key] && !dupReported {
					c.errorf(diag.SemaDupMethod, fd.NameSpan,
						fmt.Sprintf("'%s' is implemented multiple times", fd.Name))
					dupReported = true
				}
				seen[key] = true
			}

			if !s.Flags.Has(symbols.FlagStatic) && c.overridesFinal(info, s.Name) {
				c.errorf(diag.SemaFinalFnOverride, fd.NameSpan,
					fmt.Sprintf("'%s' is final and cannot be overridden", fd.Name))
			}

		case symbols.KindField:
			fd := c.fieldDecl[member]
			if s.Flags.Has(symbols.FlagNative) && !nativeType {
				c.errorf(diag.SemaUnexpectedNative, fd.NameSpan,
					fmt.Sprintf("'%s' is marked native but declared in a scripted type", fd.Name))
			}
			if s.Flags.Has(symbols.FlagPersistent) {
				if prim, ref := c.referenceCategory(c.fields[member]); ref {
					c.errorf(diag.SemaInvalidPersistent, fd.NameSpan,
						fmt.Sprintf("persistent fields cannot have the reference type '%s'", prim))
				}
			}
		}
	}

	if !isInterface && !decl.Quals.Has(ast.QualAbstract) {
		c.checkCompleteness(sym, info)
	}
}

// overridesFinal reports whether any ancestor declares a final method under
// name.
func (c *Checker) overridesFinal(info *ClassInfo, name source.StringID) bool {
	for _, anc := range info.Ancestors {
		if c.classes[anc] == nil {
			continue
		}
		ancScope := c.table.Scopes.Get(c.table.Get(anc).OwnScope)
		for _, m := range ancScope.Symbols {
			s := c.table.Get(m)
			if s.Kind == symbols.KindFunc && s.Name == name && s.Flags.Has(symbols.FlagFinal) {
				return true
			}
		}
	}
	return false
}

// referenceCategory reports the reference-category primitive a field type
// carries, looking through array nesting. Persistence needs value
// representation, so String, ResRef and Variant are rejected at any depth.
func (c *Checker) referenceCategory(t types.TypeID) (types.Primitive, bool) {
	tt, ok := c.types.Lookup(t)
	if !ok {
		return types.PrimInvalid, false
	}
	switch tt.Kind {
	case types.KindPrimitive:
		if tt.Prim.IsReferenceCategory() {
			return tt.Prim, true
		}
	case types.KindArray, types.KindStaticArray:
		return c.referenceCategory(tt.Elem)
	}
	return types.PrimInvalid, false
}

// checkCompleteness verifies a concrete class implements every abstract
// member it inherits. One diagnostic per class, listing every missing
// signature as a note in ancestor order.
func (c *Checker) checkCompleteness(sym symbols.SymbolID, info *ClassInfo) {
	concrete := make(map[source.StringID]bool)
	own := c.table.Scopes.Get(c.table.Get(sym).OwnScope)
	for _, m := range own.Symbols {
		s := c.table.Get(m)
		if s.Kind != symbols.KindFunc {
			continue
		}
		if c.funcDecl[m].Body != nil || s.Flags.Has(symbols.FlagNative) {
			concrete[s.Name] = true
		}
	}

	var missing []diag.Note
	listed := make(map[source.StringID]bool)
	for _, anc := range info.Ancestors {
		ancInfo := c.classes[anc]
		if ancInfo == nil {
			continue
		}
		ancIsIface := ancInfo.Decl.Kind == ast.KindInterface
		ancScope := c.table.Scopes.Get(c.table.Get(anc).OwnScope)
		for _, m := range ancScope.Symbols {
			s := c.table.Get(m)
			if s.Kind != symbols.KindFunc {
				continue
			}
			fd := c.funcDecl[m]
			abstract := s.Flags.Has(symbols.FlagAbstract) || (ancIsIface && fd.Body == nil)
			switch {
			case abstract:
				if !concrete[s.Name] && !listed[s.Name] {
					missing = append(missing, diag.Note{Span: fd.NameSpan, Msg: c.signatureLabel(m)})
					listed[s.Name] = true
				}
			case fd.Body != nil || s.Flags.Has(symbols.FlagNative):
				// A nearer ancestor satisfies the requirement for everything
				// further out; ancestors iterate nearest first.
				concrete[s.Name] = true
			}
		}
	}

	if len(missing) > 0 {
		c.errorNotes(diag.SemaMissingImpl, info.Decl.NameSpan,
			fmt.Sprintf("'%s' is missing implementations for the following members", info.Decl.Name),
			missing)
	}
}

// signatureLabel renders a method signature the way MISSING_IMPL notes list
// them: "func describe() -> String". A Void result keeps the short form.
func (c *Checker) signatureLabel(sym symbols.SymbolID) string {
	fi := c.funcs[sym]
	var b strings.Builder
	b.WriteString("func ")
	b.WriteString(c.table.NameOf(sym))
	b.WriteByte('(')
	for i, p := range fi.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.types.Label(p, c.table))
	}
	b.WriteByte(')')
	if fi.Result != c.types.Builtins().Void {
		b.WriteString(" -> ")
		b.WriteString(c.types.Label(fi.Result, c.table))
	}
	return b.String()
}
