package symbols

// SymbolID identifies a declared symbol inside a Table. 0 is the invalid
// sentinel.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol.
const NoSymbolID SymbolID = 0

// IsValid reports whether the ID refers to a real symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// ScopeID identifies a lexical scope inside a Table. 0 is the invalid
// sentinel.
type ScopeID uint32

// NoScopeID marks the absence of a scope.
const NoScopeID ScopeID = 0

// IsValid reports whether the ID refers to a real scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }
