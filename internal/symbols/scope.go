package symbols

import "volt/internal/source"

// ScopeKind enumerates the lexical nesting levels.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeModule             // top-level declarations, shared across units
	ScopeClass              // class/struct/interface/enum body
	ScopeFunction           // function parameters and top block
	ScopeBlock              // nested block, case arm, if-let body
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeModule:
		return "module"
	case ScopeClass:
		return "class"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope is one lexical namespace. Lookup walks Parent links outward; a name
// bound in a nested scope shadows the same name further out.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Owner    SymbolID // class/function symbol that owns this scope
	Span     source.Span
	Names    map[source.StringID]SymbolID
	Symbols  []SymbolID // declaration order
	Children []ScopeID
}
