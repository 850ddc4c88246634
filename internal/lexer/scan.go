package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(mark)
	span := lx.cursor.SpanFrom(mark)

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}

// scanNumber scans a decimal integer or float literal. A '.' is part of the
// number only when followed by a digit, so "0..3" lexes as 0, '..', 3.
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	kind := token.IntLit

	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDigit(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// A trailing identifier character makes the literal malformed ("12ab").
	if !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(mark)
		lx.reporter.Report(diag.LexBadNumber, diag.SevError, span,
			"malformed numeric literal", nil)
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(mark)}
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
}

// scanString scans a double-quoted literal with \" \\ \n \t escapes. Text
// keeps the source spelling including quotes; unescaping happens later.
func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == '"' {
			return token.Token{
				Kind: token.StringLit,
				Span: lx.cursor.SpanFrom(mark),
				Text: lx.cursor.TextFrom(mark),
			}
		}
	}

	span := lx.cursor.SpanFrom(mark)
	lx.reporter.Report(diag.LexUnterminatedString, diag.SevError, span,
		"unterminated string literal", nil)
	return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(mark)}
}

func (lx *Lexer) scanOperator() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			kind = token.Arrow
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.GtEq
		}
	case '&':
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AndAnd
		}
	case '|':
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.OrOr
		}
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			kind = token.DotDot
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '@':
		kind = token.At
	case '_':
		kind = token.Underscore
	}

	span := lx.cursor.SpanFrom(mark)
	text := lx.cursor.TextFrom(mark)
	if kind == token.Invalid {
		lx.reporter.Report(diag.LexUnknownChar, diag.SevError, span,
			"unknown character "+quoteByte(ch), nil)
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}

func quoteByte(b byte) string {
	return "'" + string(rune(b)) + "'"
}
