package token

import (
	"volt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or null
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NullLit, IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsQualifier reports whether the token is a declaration qualifier keyword.
func (t Token) IsQualifier() bool {
	switch t.Kind {
	case KwAbstract, KwFinal, KwStatic, KwNative, KwPersistent, KwConst,
		KwPublic, KwProtected, KwPrivate:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwModule, KwClass, KwStruct, KwInterface, KwEnum, KwFunc, KwLet,
		KwImpl, KwExtends, KwImplements, KwIf, KwElse, KwWhile, KwFor, KwIn,
		KwSwitch, KwCase, KwDefault, KwReturn, KwBreak, KwContinue, KwNew,
		KwThis, KwAbstract, KwFinal, KwStatic, KwNative, KwPersistent,
		KwConst, KwPublic, KwProtected, KwPrivate, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
