package symbols

import "volt/internal/source"

// Kind is the closed set of declared entity kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindEnumVariant
	KindFunc
	KindField
	KindTypeParam
	KindImpl // generic specialization alias
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindEnumVariant:
		return "enum variant"
	case KindFunc:
		return "function"
	case KindField:
		return "field"
	case KindTypeParam:
		return "type parameter"
	case KindImpl:
		return "specialization"
	case KindLocal:
		return "local"
	default:
		return "invalid"
	}
}

// IsType reports whether the symbol names something usable in type position.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum, KindTypeParam, KindImpl:
		return true
	default:
		return false
	}
}

// Flags records the declaration qualifiers that matter to semantic checks.
type Flags uint16

const (
	FlagNative Flags = 1 << iota
	FlagPersistent
	FlagFinal
	FlagStatic
	FlagAbstract
	FlagConst
)

// Has reports whether every bit of f2 is set.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Symbol is one declared entity. Symbols are created during declaration
// collection and never deleted; a rejected redeclaration simply never gets a
// symbol, the first declaration stays authoritative.
type Symbol struct {
	Name     source.StringID
	QName    source.StringID // qualified name, e.g. "Pair.swap"
	Kind     Kind
	Flags    Flags
	Scope    ScopeID // scope the symbol was declared in
	OwnScope ScopeID // body scope for classes/functions, NoScopeID otherwise
	Span     source.Span
}
