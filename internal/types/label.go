package types

import (
	"fmt"
	"strings"

	"volt/internal/symbols"
)

// Label renders a TypeID the way diagnostics quote types. Nominal and
// type-parameter names come from the symbol table.
func (in *Interner) Label(id TypeID, table *symbols.Table) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<unknown>"
	}
	switch t.Kind {
	case KindError:
		return "<error>"
	case KindPrimitive:
		return t.Prim.String()
	case KindNominal, KindTypeParam:
		name := "<anonymous>"
		if t.Sym.IsValid() && table != nil {
			name = table.NameOf(t.Sym)
		}
		if len(t.Args) == 0 {
			return name
		}
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = in.Label(a, table)
		}
		return name + "<" + strings.Join(parts, ", ") + ">"
	case KindArray:
		return "[" + in.Label(t.Elem, table) + "]"
	case KindStaticArray:
		return fmt.Sprintf("[%s; %d]", in.Label(t.Elem, table), t.Count)
	case KindFunc:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = in.Label(p, table)
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + in.Label(t.Result, table)
	}
	return "<invalid>"
}
