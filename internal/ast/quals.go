package ast

import (
	"strings"

	"volt/internal/source"
)

// Quals is the bitset of declaration qualifier keywords.
type Quals uint16

const (
	QualAbstract Quals = 1 << iota
	QualFinal
	QualStatic
	QualNative
	QualPersistent
	QualConst
	QualPublic
	QualProtected
	QualPrivate
)

// Has reports whether every bit of q2 is set in q.
func (q Quals) Has(q2 Quals) bool {
	return q&q2 == q2
}

func (q Quals) String() string {
	names := []struct {
		bit  Quals
		name string
	}{
		{QualAbstract, "abstract"},
		{QualFinal, "final"},
		{QualStatic, "static"},
		{QualNative, "native"},
		{QualPersistent, "persistent"},
		{QualConst, "const"},
		{QualPublic, "public"},
		{QualProtected, "protected"},
		{QualPrivate, "private"},
	}
	var parts []string
	for _, n := range names {
		if q.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}

// Annotation is an `@name(args)` marker attached to a declaration.
type Annotation struct {
	Span source.Span
	Name string
	Args []Expr
}
