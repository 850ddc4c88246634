// Package types implements Volt's type representation: interned structural
// descriptors addressed by TypeID. Class and struct identity is the
// declaring symbol, not the name text, so a rejected shadowing redeclaration
// can never alias the authoritative type.
package types

import "volt/internal/symbols"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// IsValid reports whether the ID refers to an interned type.
func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind enumerates the closed set of type shapes.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindError is the recovery sentinel: it unifies with everything so one
	// unresolved reference does not cascade into spurious diagnostics.
	KindError
	KindPrimitive
	KindNominal // class/struct/interface/enum reference with type arguments
	KindArray
	KindStaticArray
	KindFunc
	KindTypeParam
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindPrimitive:
		return "primitive"
	case KindNominal:
		return "nominal"
	case KindArray:
		return "array"
	case KindStaticArray:
		return "static array"
	case KindFunc:
		return "function"
	case KindTypeParam:
		return "type parameter"
	default:
		return "invalid"
	}
}

// Primitive enumerates the built-in value types.
type Primitive uint8

const (
	PrimInvalid Primitive = iota
	PrimVoid
	PrimBool
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimUint8
	PrimUint16
	PrimUint32
	PrimUint64
	PrimFloat
	PrimDouble
	PrimString
	PrimCName
	PrimResRef
	PrimVariant
)

var primitiveNames = map[Primitive]string{
	PrimVoid:    "Void",
	PrimBool:    "Bool",
	PrimInt8:    "Int8",
	PrimInt16:   "Int16",
	PrimInt32:   "Int32",
	PrimInt64:   "Int64",
	PrimUint8:   "Uint8",
	PrimUint16:  "Uint16",
	PrimUint32:  "Uint32",
	PrimUint64:  "Uint64",
	PrimFloat:   "Float",
	PrimDouble:  "Double",
	PrimString:  "String",
	PrimCName:   "CName",
	PrimResRef:  "ResRef",
	PrimVariant: "Variant",
}

var primitivesByName = func() map[string]Primitive {
	out := make(map[string]Primitive, len(primitiveNames))
	for p, name := range primitiveNames {
		out[name] = p
	}
	return out
}()

func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "invalid"
}

// PrimitiveByName maps a source spelling to its primitive, if any.
func PrimitiveByName(name string) (Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}

// IsReferenceCategory reports whether the primitive is string-like,
// resource-reference or variant. Persistent fields may not carry these.
func (p Primitive) IsReferenceCategory() bool {
	switch p {
	case PrimString, PrimResRef, PrimVariant:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the primitive is an integer or floating type.
func (p Primitive) IsNumeric() bool {
	switch p {
	case PrimInt8, PrimInt16, PrimInt32, PrimInt64,
		PrimUint8, PrimUint16, PrimUint32, PrimUint64,
		PrimFloat, PrimDouble:
		return true
	default:
		return false
	}
}

// Type is the structural descriptor for one type. Equality is structural:
// two descriptors with the same fields intern to the same TypeID.
type Type struct {
	Kind   Kind
	Prim   Primitive        // KindPrimitive
	Sym    symbols.SymbolID // KindNominal and KindTypeParam identity
	Args   []TypeID         // KindNominal type arguments
	Elem   TypeID           // KindArray / KindStaticArray element
	Count  uint32           // KindStaticArray length
	Params []TypeID         // KindFunc parameters, in order
	Result TypeID           // KindFunc return
}

// MakePrimitive describes a built-in value type.
func MakePrimitive(p Primitive) Type {
	return Type{Kind: KindPrimitive, Prim: p}
}

// MakeNominal describes a class/struct/interface/enum reference.
func MakeNominal(sym symbols.SymbolID, args []TypeID) Type {
	return Type{Kind: KindNominal, Sym: sym, Args: args}
}

// MakeArray describes a dynamic array of elem.
func MakeArray(elem TypeID) Type {
	return Type{Kind: KindArray, Elem: elem}
}

// MakeStaticArray describes a fixed-length array of elem.
func MakeStaticArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindStaticArray, Elem: elem, Count: count}
}

// MakeFunc describes a function signature.
func MakeFunc(params []TypeID, result TypeID) Type {
	return Type{Kind: KindFunc, Params: params, Result: result}
}

// MakeTypeParam describes a reference to a declared type parameter.
func MakeTypeParam(sym symbols.SymbolID) Type {
	return Type{Kind: KindTypeParam, Sym: sym}
}
