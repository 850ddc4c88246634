package types

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Builtins caches the TypeIDs every analysis touches constantly.
type Builtins struct {
	Error TypeID

	Void    TypeID
	Bool    TypeID
	Int8    TypeID
	Int16   TypeID
	Int32   TypeID
	Int64   TypeID
	Uint8   TypeID
	Uint16  TypeID
	Uint32  TypeID
	Uint64  TypeID
	Float   TypeID
	Double  TypeID
	String  TypeID
	CName   TypeID
	ResRef  TypeID
	Variant TypeID
}

// Interner provides stable TypeIDs for structurally equal descriptors.
type Interner struct {
	types    []Type
	index    map[string]TypeID
	builtins Builtins
	byPrim   map[Primitive]TypeID
}

// NewInterner constructs an interner seeded with the error sentinel and the
// built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		types:  make([]Type, 1, 128), // index 0 reserved for NoTypeID
		index:  make(map[string]TypeID, 128),
		byPrim: make(map[Primitive]TypeID, 16),
	}
	in.builtins.Error = in.Intern(Type{Kind: KindError})
	in.builtins.Void = in.Intern(MakePrimitive(PrimVoid))
	in.builtins.Bool = in.Intern(MakePrimitive(PrimBool))
	in.builtins.Int8 = in.Intern(MakePrimitive(PrimInt8))
	in.builtins.Int16 = in.Intern(MakePrimitive(PrimInt16))
	in.builtins.Int32 = in.Intern(MakePrimitive(PrimInt32))
	in.builtins.Int64 = in.Intern(MakePrimitive(PrimInt64))
	in.builtins.Uint8 = in.Intern(MakePrimitive(PrimUint8))
	in.builtins.Uint16 = in.Intern(MakePrimitive(PrimUint16))
	in.builtins.Uint32 = in.Intern(MakePrimitive(PrimUint32))
	in.builtins.Uint64 = in.Intern(MakePrimitive(PrimUint64))
	in.builtins.Float = in.Intern(MakePrimitive(PrimFloat))
	in.builtins.Double = in.Intern(MakePrimitive(PrimDouble))
	in.builtins.String = in.Intern(MakePrimitive(PrimString))
	in.builtins.CName = in.Intern(MakePrimitive(PrimCName))
	in.builtins.ResRef = in.Intern(MakePrimitive(PrimResRef))
	in.builtins.Variant = in.Intern(MakePrimitive(PrimVariant))
	return in
}

// Builtins returns the cached built-in TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Primitive returns the TypeID for a built-in primitive.
func (in *Interner) Primitive(p Primitive) TypeID { return in.byPrim[p] }

// Intern ensures t has a stable TypeID, allocating one on first sight.
func (in *Interner) Intern(t Type) TypeID {
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("type arena overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[key] = id
	if t.Kind == KindPrimitive {
		in.byPrim[t.Prim] = id
	}
	return id
}

// Lookup returns the descriptor for id, reporting whether id is known.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an unknown ID; stale IDs are programming errors.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("types: invalid TypeID %d", id))
	}
	return t
}

// IsError reports whether id is the recovery sentinel.
func (in *Interner) IsError(id TypeID) bool {
	return id == in.builtins.Error
}

// Len reports the number of interned types excluding the sentinel slot.
func (in *Interner) Len() int { return len(in.types) - 1 }

// typeKey renders a descriptor into the canonical form used for structural
// deduplication.
func typeKey(t Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:%d:%d:%d:%d", t.Kind, t.Prim, t.Sym, t.Elem, t.Count, t.Result)
	b.WriteByte('[')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", a)
	}
	b.WriteString("][")
	for i, p := range t.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", p)
	}
	b.WriteByte(']')
	return b.String()
}
