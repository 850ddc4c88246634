package sema

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/symbols"
	"volt/internal/types"
)

// resolveHierarchy resolves the base and implements edges of one class-like
// symbol. Resolution is demand-driven: an edge recurses into its target
// first, so every edge is validated exactly once, and the per-run state
// marker breaks cycles. A cyclic edge is reported and dropped, so ancestor
// walks over cycle participants always terminate.
func (c *Checker) resolveHierarchy(sym symbols.SymbolID) {
	info := c.classes[sym]
	if info == nil || info.state != stateUnresolved {
		return
	}
	info.state = stateResolving

	decl := info.Decl
	if decl.Base != nil {
		if base, ok := c.resolveBaseRef(info, decl.Base); ok {
			info.Base = base
		}
	}
	for _, ref := range decl.Implements {
		if iface, ok := c.resolveInterfaceRef(info, ref); ok {
			info.Interfaces = append(info.Interfaces, iface)
		}
	}

	info.Ancestors = c.linearizeAncestors(info)
	info.state = stateResolved
}

// resolveBaseRef validates one extends clause. The base must be a resolvable
// class-like symbol of the same declaration form: a class extends a class, a
// struct a struct, an interface an interface. Anything else is INVALID_BASE
// anchored at the clause, and the base is treated as absent afterwards.
func (c *Checker) resolveBaseRef(info *ClassInfo, ref *ast.NamedType) (symbols.SymbolID, bool) {
	if _, isPrim := types.PrimitiveByName(ref.Name); isPrim {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("a %s cannot inherit from a primitive type", info.Decl.Kind))
		return symbols.NoSymbolID, false
	}
	baseSym := c.table.Resolve(c.table.ModuleScope(), c.table.Strings.Intern(ref.Name))
	if !baseSym.IsValid() {
		c.errorf(diag.SemaUnresolvedType, ref.NameSpan,
			fmt.Sprintf("'%s' is not a known type", ref.Name))
		return symbols.NoSymbolID, false
	}
	baseInfo := c.classes[baseSym]
	if baseInfo == nil {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("a %s cannot inherit from %s",
				info.Decl.Kind, kindPhrase(c.table.Get(baseSym).Kind)))
		return symbols.NoSymbolID, false
	}
	if baseInfo.Decl.Kind != info.Decl.Kind {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("a %s cannot inherit from %s",
				info.Decl.Kind, classKindPhrase(baseInfo.Decl.Kind)))
		return symbols.NoSymbolID, false
	}
	if baseSym == info.Sym || baseInfo.state == stateResolving {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("'%s' circularly extends itself", c.table.NameOf(info.Sym)))
		return symbols.NoSymbolID, false
	}
	c.resolveHierarchy(baseSym)
	return baseSym, true
}

// resolveInterfaceRef validates one entry of an implements clause.
func (c *Checker) resolveInterfaceRef(info *ClassInfo, ref *ast.NamedType) (symbols.SymbolID, bool) {
	if _, isPrim := types.PrimitiveByName(ref.Name); isPrim {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("'%s' is not an interface", ref.Name))
		return symbols.NoSymbolID, false
	}
	ifaceSym := c.table.Resolve(c.table.ModuleScope(), c.table.Strings.Intern(ref.Name))
	if !ifaceSym.IsValid() {
		c.errorf(diag.SemaUnresolvedType, ref.NameSpan,
			fmt.Sprintf("'%s' is not a known type", ref.Name))
		return symbols.NoSymbolID, false
	}
	ifaceInfo := c.classes[ifaceSym]
	if ifaceInfo == nil || ifaceInfo.Decl.Kind != ast.KindInterface {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("'%s' is not an interface", ref.Name))
		return symbols.NoSymbolID, false
	}
	if ifaceSym == info.Sym || ifaceInfo.state == stateResolving {
		c.errorf(diag.SemaInvalidBase, ref.NameSpan,
			fmt.Sprintf("'%s' circularly extends itself", c.table.NameOf(info.Sym)))
		return symbols.NoSymbolID, false
	}
	c.resolveHierarchy(ifaceSym)
	return ifaceSym, true
}

// linearizeAncestors flattens the transitive base/implements graph into the
// nearest-first order used by member lookup: the base chain, then implemented
// interfaces depth-first, keeping the first occurrence of each symbol.
func (c *Checker) linearizeAncestors(info *ClassInfo) []symbols.SymbolID {
	var out []symbols.SymbolID
	seen := map[symbols.SymbolID]bool{info.Sym: true}

	var add func(sym symbols.SymbolID)
	add = func(sym symbols.SymbolID) {
		if seen[sym] {
			return
		}
		seen[sym] = true
		out = append(out, sym)
		if next := c.classes[sym]; next != nil {
			if next.Base.IsValid() {
				add(next.Base)
			}
			for _, iface := range next.Interfaces {
				add(iface)
			}
		}
	}
	if info.Base.IsValid() {
		add(info.Base)
	}
	for _, iface := range info.Interfaces {
		add(iface)
	}
	return out
}

func classKindPhrase(k ast.ClassKind) string {
	if k == ast.KindInterface {
		return "an interface"
	}
	return "a " + k.String()
}

func kindPhrase(k symbols.Kind) string {
	switch k {
	case symbols.KindEnum:
		return "an enum"
	case symbols.KindInterface:
		return "an interface"
	default:
		return "a " + k.String()
	}
}
