// Package symbols implements the process-wide symbol table for one analysis
// run: arena-allocated symbols and scopes addressed by integer IDs, scoped
// declaration with exact-scope redefinition detection, and outward lexical
// lookup. The table owns every Symbol and Scope; other stages hold only IDs.
package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"volt/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the symbol and scope arenas plus the shared string
// interner. One Table spans all compilation units of a run, so cross-unit
// forward references resolve once collection has finished.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner

	module ScopeID
}

// NewTable builds a fresh table with an allocated module root scope. A nil
// strings interner is replaced with a fresh one.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
	t.module = t.Scopes.New(ScopeModule, NoScopeID, NoSymbolID, source.Span{})
	return t
}

// ModuleScope returns the shared top-level scope.
func (t *Table) ModuleScope() ScopeID { return t.module }

// NewScope allocates a nested scope owned by owner.
func (t *Table) NewScope(kind ScopeKind, parent ScopeID, owner SymbolID, span source.Span) ScopeID {
	return t.Scopes.New(kind, parent, owner, span)
}

// Declare inserts sym into the exact scope given. When the simple name is
// already bound in that scope the first declaration stays authoritative:
// Declare returns its ID and ok=false, and no new symbol is allocated.
// Shadowing across nested scopes is legal and not detected here.
func (t *Table) Declare(scope ScopeID, sym Symbol) (id SymbolID, ok bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic(fmt.Sprintf("symbols: declare into invalid scope %d", scope))
	}
	if existing, taken := sc.Names[sym.Name]; taken {
		return existing, false
	}
	sym.Scope = scope
	id = t.Symbols.New(sym)
	sc.Names[sym.Name] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, true
}

// DeclareOverload inserts sym without the exact-scope uniqueness check,
// used for method overload sets where repeated names are legal. The name
// index keeps pointing at the first declaration; the scope's symbol list
// records every overload in declaration order.
func (t *Table) DeclareOverload(scope ScopeID, sym Symbol) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic(fmt.Sprintf("symbols: declare into invalid scope %d", scope))
	}
	sym.Scope = scope
	id := t.Symbols.New(sym)
	if _, taken := sc.Names[sym.Name]; !taken {
		sc.Names[sym.Name] = id
	}
	sc.Symbols = append(sc.Symbols, id)
	return id
}

// ResolveLocal looks name up in the exact scope only.
func (t *Table) ResolveLocal(scope ScopeID, name source.StringID) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	return sc.Names[name]
}

// Resolve performs lexical lookup: the scope itself first, then each
// enclosing scope outward, returning the nearest match.
func (t *Table) Resolve(scope ScopeID, name source.StringID) SymbolID {
	for scope.IsValid() {
		sc := t.Scopes.Get(scope)
		if sc == nil {
			return NoSymbolID
		}
		if id, found := sc.Names[name]; found {
			return id
		}
		scope = sc.Parent
	}
	return NoSymbolID
}

// Get returns the symbol for id, panicking on a stale or invalid ID. Symbols
// are append-only, so a dangling ID is a programming error, not a user
// diagnostic.
func (t *Table) Get(id SymbolID) *Symbol {
	sym := t.Symbols.Get(id)
	if sym == nil {
		panic(fmt.Sprintf("symbols: invalid symbol ID %d", id))
	}
	return sym
}

// NameOf returns the simple name text of a symbol.
func (t *Table) NameOf(id SymbolID) string {
	return t.Strings.MustLookup(t.Get(id).Name)
}

// QualifiedName builds the dotted path of a name declared in scope, walking
// owner symbols outward: "Pair.swap", "Color.Red".
func (t *Table) QualifiedName(scope ScopeID, name string) string {
	parts := []string{name}
	for scope.IsValid() {
		sc := t.Scopes.Get(scope)
		if sc == nil {
			break
		}
		if sc.Owner.IsValid() {
			parts = append(parts, t.NameOf(sc.Owner))
		}
		scope = sc.Parent
	}
	out := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if out != "" {
			out += "."
		}
		out += parts[i]
	}
	return out
}
