// Package lexer turns Volt source files into token streams.
//
// The lexer is error-tolerant: malformed input produces an Invalid token plus
// a diagnostic and scanning continues, so the parser always sees a stream
// that ends in EOF.
package lexer

import (
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// Lexer scans a single file into significant tokens. Comments and whitespace
// are skipped; every malformed construct is reported through the reporter.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // one-token lookahead buffer
}

// New creates a lexer over file. A nil reporter drops all diagnostics.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '_':
		// A lone underscore is the wildcard token; "_foo" is an identifier.
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '_' && isIdentContinue(b1) {
			return lx.scanIdentOrKeyword()
		}
		return lx.scanOperator()

	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()

	case isDigit(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	default:
		return lx.scanOperator()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize drains the lexer into a slice ending with the EOF token.
func (lx *Lexer) Tokenize() []token.Token {
	out := make([]token.Token, 0, 64)
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

// skipTrivia consumes whitespace and comments. An unterminated block comment
// is reported and consumes the rest of the file.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.cursor.Bump()

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return
		}
		lx.cursor.Bump()
	}
	lx.reporter.Report(diag.LexUnterminatedBlockComment, diag.SevError,
		lx.cursor.SpanFrom(mark), "unterminated block comment", nil)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
