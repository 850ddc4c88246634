package token

var keywords = map[string]Kind{
	"module":     KwModule,
	"class":      KwClass,
	"struct":     KwStruct,
	"interface":  KwInterface,
	"enum":       KwEnum,
	"func":       KwFunc,
	"let":        KwLet,
	"impl":       KwImpl,
	"extends":    KwExtends,
	"implements": KwImplements,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"in":         KwIn,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"return":     KwReturn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"new":        KwNew,
	"this":       KwThis,
	"abstract":   KwAbstract,
	"final":      KwFinal,
	"static":     KwStatic,
	"native":     KwNative,
	"persistent": KwPersistent,
	"const":      KwConst,
	"public":     KwPublic,
	"protected":  KwProtected,
	"private":    KwPrivate,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       NullLit,
}

// LookupKeyword maps ident to its keyword kind. Keywords are case-sensitive;
// only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
