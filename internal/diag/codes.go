package diag

import "fmt"

// Code is the compact numeric identifier of a diagnostic kind. The numeric
// value is internal; the stable public identity is ID(). External tooling
// (IDE integrations, CI checks) pattern-matches on ID strings, so an ID, once
// shipped, never changes.
type Code uint16

const (
	// UnknownCode marks a diagnostic without an assigned code.
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax (2000-2999)
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectSemicolon    Code = 2005
	SynExpectExpression   Code = 2006
	SynExpectPattern      Code = 2007
	SynDuplicateRest      Code = 2008
	SynExpectMember       Code = 2009

	// Symbols (3000-3099)
	SemaSymRedefinition Code = 3001

	// Types and generics (3100-3199)
	SemaUnresolvedType      Code = 3101
	SemaInvalidTypeArgCount Code = 3102
	SemaUnsatisfiedBound    Code = 3103
	SemaInvalidVariance     Code = 3104

	// Hierarchy (3200-3299)
	SemaInvalidBase Code = 3201

	// Members and signatures (3300-3399)
	SemaInvalidAnnUse     Code = 3301
	SemaUnexpectedNative  Code = 3302
	SemaInvalidPersistent Code = 3303
	SemaMissingBody       Code = 3304
	SemaNonStaticStructFn Code = 3305
	SemaDupImpl           Code = 3306
	SemaDupMethod         Code = 3307
	SemaMissingImpl       Code = 3308
	SemaFinalFnOverride   Code = 3309

	// Bodies and patterns (3400-3499)
	SemaTypeErr          Code = 3401
	SemaUnresolvedRef    Code = 3402
	SemaUnresolvedMember Code = 3403

	// I/O (4000-4999)
	IOLoadFileError Code = 4001
)

// codeIDs maps semantic codes to their stable public identifiers. Every
// lexical and syntax code shares the single "SYNTAX" identifier; external
// tooling only discriminates semantic codes.
var codeIDs = map[Code]string{
	SemaSymRedefinition:     "SYM_REDEFINITION",
	SemaUnresolvedType:      "UNRESOLVED_TYPE",
	SemaInvalidTypeArgCount: "INVALID_TYPE_ARG_COUNT",
	// The misspelling is historical and load-bearing: tooling matches on it.
	SemaUnsatisfiedBound:  "UNSASTISFIED_BOUND",
	SemaInvalidVariance:   "INVALID_VARIANCE",
	SemaInvalidBase:       "INVALID_BASE",
	SemaInvalidAnnUse:     "INVALID_ANN_USE",
	SemaUnexpectedNative:  "UNEXPECTED_NATIVE",
	SemaInvalidPersistent: "INVALID_PERSISTENT",
	SemaMissingBody:       "MISSING_BODY",
	SemaNonStaticStructFn: "NON_STATIC_STRUCT_FN",
	SemaDupImpl:           "DUP_IMPL",
	SemaDupMethod:         "DUP_METHOD",
	SemaMissingImpl:       "MISSING_IMPL",
	SemaFinalFnOverride:   "FINAL_FN_OVERRIDE",
	SemaTypeErr:           "TYPE_ERR",
	SemaUnresolvedRef:     "UNRESOLVED_REF",
	SemaUnresolvedMember:  "UNRESOLVED_MEMBER",
}

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad numeric literal",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectSemicolon:          "Expected semicolon",
	SynExpectExpression:         "Expected expression",
	SynExpectPattern:            "Expected pattern",
	SynDuplicateRest:            "Duplicate rest marker in pattern",
	SynExpectMember:             "Expected member declaration",
	SemaSymRedefinition:         "Symbol redefinition",
	SemaUnresolvedType:          "Unknown type",
	SemaInvalidTypeArgCount:     "Wrong number of type arguments",
	SemaUnsatisfiedBound:        "Type argument does not satisfy bound",
	SemaInvalidVariance:         "Type parameter used in forbidden position",
	SemaInvalidBase:             "Invalid base type",
	SemaInvalidAnnUse:           "Annotation not allowed in this context",
	SemaUnexpectedNative:        "Native member in scripted type",
	SemaInvalidPersistent:       "Persistent field of reference type",
	SemaMissingBody:             "Function body required",
	SemaNonStaticStructFn:       "Struct function must be static",
	SemaDupImpl:                 "Duplicate generic specialization",
	SemaDupMethod:               "Duplicate method",
	SemaMissingImpl:             "Missing abstract member implementations",
	SemaFinalFnOverride:         "Override of final method",
	SemaTypeErr:                 "Type mismatch",
	SemaUnresolvedRef:           "Unresolved reference",
	SemaUnresolvedMember:        "Unresolved member",
	IOLoadFileError:             "Failed to load file",
}

// ID returns the stable string identifier surfaced to callers and tooling.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	switch ic := int(c); {
	case ic >= 1000 && ic < 3000:
		return "SYNTAX"
	case ic >= 4000 && ic < 5000:
		return "IO_ERR"
	}
	return "UNKNOWN"
}

// Title returns a short capitalised description of the code.
func (c Code) Title() string {
	title, ok := codeTitles[c]
	if !ok {
		return codeTitles[UnknownCode]
	}
	return title
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
