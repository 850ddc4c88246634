package diag

import (
	"volt/internal/source"
)

// Note attaches secondary context to a diagnostic. A zero Span means the note
// has no location of its own (e.g. a missing-signature listing).
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one immutable finding. Records are never mutated after
// creation; the owning Bag hands them out in emission order.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
