package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwAbstract represents the 'abstract' qualifier keyword.
	KwAbstract // abstract
	// KwFinal represents the 'final' qualifier keyword.
	KwFinal // final
	// KwStatic represents the 'static' qualifier keyword.
	KwStatic // static
	// KwNative represents the 'native' qualifier keyword.
	KwNative // native
	// KwPersistent represents the 'persistent' qualifier keyword.
	KwPersistent // persistent
	// KwConst represents the 'const' qualifier keyword.
	KwConst // const
	// KwPublic represents the 'public' qualifier keyword.
	KwPublic // public
	// KwProtected represents the 'protected' qualifier keyword.
	KwProtected // protected
	// KwPrivate represents the 'private' qualifier keyword.
	KwPrivate // private
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// NullLit represents the null literal token.
	NullLit
	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the rest-pattern marker token.
	DotDot // ..
	// Arrow represents the return-type arrow token.
	Arrow // ->
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the annotation marker token.
	At // @
	// Underscore represents the wildcard token.
	Underscore // _
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwModule:     "module",
	KwClass:      "class",
	KwStruct:     "struct",
	KwInterface:  "interface",
	KwEnum:       "enum",
	KwFunc:       "func",
	KwLet:        "let",
	KwImpl:       "impl",
	KwExtends:    "extends",
	KwImplements: "implements",
	KwIf:         "if",
	KwElse:       "else",
	KwWhile:      "while",
	KwFor:        "for",
	KwIn:         "in",
	KwSwitch:     "switch",
	KwCase:       "case",
	KwDefault:    "default",
	KwReturn:     "return",
	KwBreak:      "break",
	KwContinue:   "continue",
	KwNew:        "new",
	KwThis:       "this",
	KwAbstract:   "abstract",
	KwFinal:      "final",
	KwStatic:     "static",
	KwNative:     "native",
	KwPersistent: "persistent",
	KwConst:      "const",
	KwPublic:     "public",
	KwProtected:  "protected",
	KwPrivate:    "private",
	KwTrue:       "true",
	KwFalse:      "false",
	NullLit:      "NullLit",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	Assign:       "=",
	EqEq:         "==",
	Bang:         "!",
	BangEq:       "!=",
	Lt:           "<",
	LtEq:         "<=",
	Gt:           ">",
	GtEq:         ">=",
	AndAnd:       "&&",
	OrOr:         "||",
	Colon:        ":",
	Semicolon:    ";",
	Comma:        ",",
	Dot:          ".",
	DotDot:       "..",
	Arrow:        "->",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	LBracket:     "[",
	RBracket:     "]",
	At:           "@",
	Underscore:   "_",
}

// String returns a printable name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
